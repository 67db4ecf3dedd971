package profilerepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/yanqian/astro-profile/internal/domain/astro"
	"github.com/yanqian/astro-profile/pkg/util"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS astro_profiles (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id     INTEGER NOT NULL,
	birth_date  TEXT NOT NULL,
	birth_time  TEXT NOT NULL,
	birth_place TEXT NOT NULL,
	latitude    REAL NOT NULL,
	longitude   REAL NOT NULL,
	timezone    TEXT NOT NULL,
	result      TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_astro_profiles_user ON astro_profiles (user_id, id DESC);
`

// SQLiteRepository persists saved profiles in a local SQLite file.
type SQLiteRepository struct {
	db   *sql.DB
	path string
}

// NewSQLiteRepository opens (creating if needed) the database at path. The
// special path ":memory:" keeps everything in memory.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	dsn := path
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("creating data directory: %w", err)
			}
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// each connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteRepository{db: db, path: path}, nil
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *SQLiteRepository) Path() string {
	return r.path
}

// Save inserts a new profile row.
func (r *SQLiteRepository) Save(ctx context.Context, record astro.ProfileRecord) (astro.ProfileRecord, error) {
	result, err := json.Marshal(record.Result)
	if err != nil {
		return astro.ProfileRecord{}, err
	}
	record.CreatedAt = util.NowUTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO astro_profiles (user_id, birth_date, birth_time, birth_place, latitude, longitude, timezone, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.UserID, record.BirthDate, record.BirthTime, record.BirthPlace,
		record.Latitude, record.Longitude, record.Timezone, string(result),
		record.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return astro.ProfileRecord{}, err
	}
	if record.ID, err = res.LastInsertId(); err != nil {
		return astro.ProfileRecord{}, err
	}
	return record, nil
}

// Latest fetches the newest profile for userID.
func (r *SQLiteRepository) Latest(ctx context.Context, userID int64) (astro.ProfileRecord, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM astro_profiles
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT 1`, userID)
	record, err := scanSQLiteProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return astro.ProfileRecord{}, false, nil
		}
		return astro.ProfileRecord{}, false, err
	}
	return record, true, nil
}

// List returns up to limit profiles for userID, newest first.
func (r *SQLiteRepository) List(ctx context.Context, userID int64, limit int) ([]astro.ProfileRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+profileColumns+`
		FROM astro_profiles
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]astro.ProfileRecord, 0, limit)
	for rows.Next() {
		record, err := scanSQLiteProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func scanSQLiteProfile(row rowScanner) (astro.ProfileRecord, error) {
	var (
		record  astro.ProfileRecord
		result  string
		created string
	)
	if err := row.Scan(
		&record.ID, &record.UserID, &record.BirthDate, &record.BirthTime, &record.BirthPlace,
		&record.Latitude, &record.Longitude, &record.Timezone, &result, &created,
	); err != nil {
		return astro.ProfileRecord{}, err
	}
	if err := json.Unmarshal([]byte(result), &record.Result); err != nil {
		return astro.ProfileRecord{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return astro.ProfileRecord{}, fmt.Errorf("parsing created_at: %w", err)
	}
	record.CreatedAt = ts.UTC()
	return record, nil
}

var _ astro.Repository = (*SQLiteRepository)(nil)
