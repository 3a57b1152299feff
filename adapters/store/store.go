// Package store persists scenario records for the CLI and the server.
//
// The engine never touches persistence: callers load records here, hand
// them to the engine by value, and save revisions back. Two backends are
// provided, an in-memory map for tests and ephemeral runs and a SQLite
// file for durable scenario libraries. Records travel as JSON documents
// in both, so a record read back is exactly the record saved.
package store

import (
	"context"

	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

// Backend selects a store implementation
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
)

// Store is the scenario repository interface
type Store interface {
	// Save inserts or replaces a record, keyed by its id. Saving a record
	// marked as baseline demotes any previously marked record.
	Save(ctx context.Context, params types.ScenarioParameters) error

	// Get retrieves a record by id
	Get(ctx context.Context, id string) (types.ScenarioParameters, error)

	// List returns all records ordered by creation time, then by name
	List(ctx context.Context) ([]types.ScenarioParameters, error)

	// Delete removes a record by id
	Delete(ctx context.Context, id string) error

	// Baseline returns the record marked as the comparison reference
	Baseline(ctx context.Context) (types.ScenarioParameters, error)

	// Close releases the backend resources
	Close() error
}

// Open creates a store for the given backend. The path is the database
// file for the SQLite backend and is ignored by the memory backend.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, errors.NotSupported("store backend " + string(backend))
	}
}
