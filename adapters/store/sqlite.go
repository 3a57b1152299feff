// Package store - SQLite backend
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

// timeLayout is RFC 3339 with fixed-width nanoseconds so that the text
// column orders chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	is_baseline INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL,
	document    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scenarios_created ON scenarios (created_at);
`

// SQLiteStore persists records in a single-table SQLite database. The full
// record travels as a JSON document; the indexed columns exist for ordering
// and baseline lookups only.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite scenario store, creating the directory and
// initializing the schema on first use.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Store("failed to create store directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Store("failed to open scenario database", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, errors.Store("failed to set database pragmas", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Store("failed to reach scenario database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Store("failed to initialize scenario schema", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save inserts or replaces a record, demoting any previous baseline when
// the record is marked as one. The creation time of an existing row is
// preserved.
func (s *SQLiteStore) Save(ctx context.Context, params types.ScenarioParameters) error {
	if params.ID == "" {
		return errors.Input("scenario id must not be empty")
	}

	document, err := json.Marshal(params)
	if err != nil {
		return errors.Store("failed to encode scenario", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Store("failed to begin transaction", err)
	}

	if params.IsBaseline {
		if _, err := tx.ExecContext(ctx, `UPDATE scenarios SET is_baseline = 0 WHERE id != ?`, params.ID); err != nil {
			_ = tx.Rollback()
			return errors.Store("failed to demote previous baseline", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO scenarios (id, name, is_baseline, created_at, updated_at, document)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name        = excluded.name,
			is_baseline = excluded.is_baseline,
			updated_at  = excluded.updated_at,
			document    = excluded.document
	`, params.ID, params.Name, boolToInt(params.IsBaseline),
		params.CreatedAt.UTC().Format(timeLayout),
		params.UpdatedAt.UTC().Format(timeLayout),
		string(document)); err != nil {
		_ = tx.Rollback()
		return errors.Store("failed to save scenario", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.Store("failed to commit scenario", err)
	}
	return nil
}

// Get retrieves a record by id
func (s *SQLiteStore) Get(ctx context.Context, id string) (types.ScenarioParameters, error) {
	var document string
	var baseline int
	err := s.db.QueryRowContext(ctx,
		`SELECT document, is_baseline FROM scenarios WHERE id = ?`, id).Scan(&document, &baseline)
	if err == sql.ErrNoRows {
		return types.ScenarioParameters{}, errors.NotFound("scenario", id)
	}
	if err != nil {
		return types.ScenarioParameters{}, errors.Store("failed to load scenario", err)
	}
	return decodeRecord(document, baseline)
}

// List returns all records ordered by creation time, then by name
func (s *SQLiteStore) List(ctx context.Context) ([]types.ScenarioParameters, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document, is_baseline FROM scenarios ORDER BY created_at, name`)
	if err != nil {
		return nil, errors.Store("failed to list scenarios", err)
	}
	defer rows.Close()

	var records []types.ScenarioParameters
	for rows.Next() {
		var document string
		var baseline int
		if err := rows.Scan(&document, &baseline); err != nil {
			return nil, errors.Store("failed to scan scenario row", err)
		}
		params, err := decodeRecord(document, baseline)
		if err != nil {
			return nil, err
		}
		records = append(records, params)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Store("failed to iterate scenarios", err)
	}
	return records, nil
}

// Delete removes a record by id
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return errors.Store("failed to delete scenario", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Store("failed to confirm deletion", err)
	}
	if affected == 0 {
		return errors.NotFound("scenario", id)
	}
	return nil
}

// Baseline returns the record marked as the comparison reference
func (s *SQLiteStore) Baseline(ctx context.Context) (types.ScenarioParameters, error) {
	var document string
	var baseline int
	err := s.db.QueryRowContext(ctx,
		`SELECT document, is_baseline FROM scenarios WHERE is_baseline = 1 LIMIT 1`).Scan(&document, &baseline)
	if err == sql.ErrNoRows {
		return types.ScenarioParameters{}, errors.NotFound("baseline scenario", "none marked")
	}
	if err != nil {
		return types.ScenarioParameters{}, errors.Store("failed to load baseline scenario", err)
	}
	return decodeRecord(document, baseline)
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// decodeRecord unmarshals a stored document. The is_baseline column is
// authoritative: demotions update the column without rewriting documents.
func decodeRecord(document string, baseline int) (types.ScenarioParameters, error) {
	var params types.ScenarioParameters
	if err := json.Unmarshal([]byte(document), &params); err != nil {
		return types.ScenarioParameters{}, errors.Store("failed to decode scenario", err)
	}
	params.IsBaseline = baseline != 0
	return params, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ Store = (*SQLiteStore)(nil)
