package profilerepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/astro-profile/internal/domain/astro"
)

// PostgresRepository persists saved profiles in the astro_profiles table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const profileColumns = `id, user_id, birth_date, birth_time, birth_place, latitude, longitude, timezone, result, created_at`

// Save inserts a new profile row.
func (r *PostgresRepository) Save(ctx context.Context, record astro.ProfileRecord) (astro.ProfileRecord, error) {
	result, err := json.Marshal(record.Result)
	if err != nil {
		return astro.ProfileRecord{}, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO astro_profiles (user_id, birth_date, birth_time, birth_place, latitude, longitude, timezone, result)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+profileColumns,
		record.UserID, record.BirthDate, record.BirthTime, record.BirthPlace,
		record.Latitude, record.Longitude, record.Timezone, result,
	)
	return scanProfile(row)
}

// Latest fetches the newest profile for userID.
func (r *PostgresRepository) Latest(ctx context.Context, userID int64) (astro.ProfileRecord, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM astro_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, userID)
	record, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return astro.ProfileRecord{}, false, nil
		}
		return astro.ProfileRecord{}, false, err
	}
	return record, true, nil
}

// List returns up to limit profiles for userID, newest first.
func (r *PostgresRepository) List(ctx context.Context, userID int64, limit int) ([]astro.ProfileRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM astro_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]astro.ProfileRecord, 0, limit)
	for rows.Next() {
		record, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (astro.ProfileRecord, error) {
	var (
		record  astro.ProfileRecord
		result  []byte
		created time.Time
	)
	if err := row.Scan(
		&record.ID, &record.UserID, &record.BirthDate, &record.BirthTime, &record.BirthPlace,
		&record.Latitude, &record.Longitude, &record.Timezone, &result, &created,
	); err != nil {
		return astro.ProfileRecord{}, err
	}
	if err := json.Unmarshal(result, &record.Result); err != nil {
		return astro.ProfileRecord{}, err
	}
	record.CreatedAt = created.UTC()
	return record, nil
}

var _ astro.Repository = (*PostgresRepository)(nil)
