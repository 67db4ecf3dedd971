package signstats

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/astro-profile/internal/domain/astro"
)

// MemoryStore is an in-memory implementation of the sign statistics for tests/dev.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]map[astro.ZodiacSign]int64
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]map[astro.ZodiacSign]int64)}
}

// Increment bumps the counter for sign under kind.
func (s *MemoryStore) Increment(_ context.Context, kind string, sign astro.ZodiacSign) error {
	if kind == "" || !sign.Valid() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket, ok := s.counts[kind]
	if !ok {
		bucket = make(map[astro.ZodiacSign]int64)
		s.counts[kind] = bucket
	}
	bucket[sign]++
	return nil
}

// Top returns the most frequent signs for kind. Ties keep zodiac order.
func (s *MemoryStore) Top(_ context.Context, kind string, limit int) ([]astro.SignCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bucket := s.counts[kind]
	if limit <= 0 {
		limit = len(bucket)
	}
	items := make([]astro.SignCount, 0, len(bucket))
	for sign, count := range bucket {
		items = append(items, astro.SignCount{Sign: sign, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Sign < items[j].Sign
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ astro.StatsStore = (*MemoryStore)(nil)
