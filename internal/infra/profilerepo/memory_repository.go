package profilerepo

import (
	"context"
	"sync"

	"github.com/yanqian/astro-profile/internal/domain/astro"
	"github.com/yanqian/astro-profile/pkg/util"
)

const defaultListLimit = 20

// MemoryRepository keeps saved profiles in process memory for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []astro.ProfileRecord
	seq     int64
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save appends the record and assigns its ID and timestamp.
func (r *MemoryRepository) Save(_ context.Context, record astro.ProfileRecord) (astro.ProfileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	record.ID = r.seq
	record.CreatedAt = util.NowUTC()
	r.records = append(r.records, record)
	return record, nil
}

// Latest returns the most recent record for userID.
func (r *MemoryRepository) Latest(_ context.Context, userID int64) (astro.ProfileRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			return r.records[i], true, nil
		}
	}
	return astro.ProfileRecord{}, false, nil
}

// List returns up to limit records for userID, newest first.
func (r *MemoryRepository) List(_ context.Context, userID int64, limit int) ([]astro.ProfileRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]astro.ProfileRecord, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		if r.records[i].UserID == userID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

var _ astro.Repository = (*MemoryRepository)(nil)
