// Package store - In-memory backend
package store

import (
	"context"
	"encoding/json"
	"io"
	"sort"
	"sync"

	"datacenter-tco/core/types"
	"datacenter-tco/internal/errors"
)

// MemoryStore keeps records in a map. Records are stored and returned by
// value, so callers never share state through the store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]types.ScenarioParameters
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]types.ScenarioParameters)}
}

// Save inserts or replaces a record
func (s *MemoryStore) Save(ctx context.Context, params types.ScenarioParameters) error {
	if params.ID == "" {
		return errors.Input("scenario id must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if params.IsBaseline {
		for id, record := range s.records {
			if record.IsBaseline && id != params.ID {
				record.IsBaseline = false
				s.records[id] = record
			}
		}
	}
	s.records[params.ID] = params
	return nil
}

// Get retrieves a record by id
func (s *MemoryStore) Get(ctx context.Context, id string) (types.ScenarioParameters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return types.ScenarioParameters{}, errors.NotFound("scenario", id)
	}
	return record, nil
}

// List returns all records ordered by creation time, then by name
func (s *MemoryStore) List(ctx context.Context) ([]types.ScenarioParameters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]types.ScenarioParameters, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].Name < records[j].Name
	})
	return records, nil
}

// Delete removes a record by id
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return errors.NotFound("scenario", id)
	}
	delete(s.records, id)
	return nil
}

// Baseline returns the record marked as the comparison reference
func (s *MemoryStore) Baseline(ctx context.Context) (types.ScenarioParameters, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.IsBaseline {
			return record, nil
		}
	}
	return types.ScenarioParameters{}, errors.NotFound("baseline scenario", "none marked")
}

// Export writes all records as an indented JSON array
func (s *MemoryStore) Export(w io.Writer) error {
	records, err := s.List(context.Background())
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return errors.Store("failed to export scenarios", err)
	}
	return nil
}

// Import merges records from a JSON array produced by Export
func (s *MemoryStore) Import(r io.Reader) error {
	var records []types.ScenarioParameters
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return errors.Store("failed to import scenarios", err)
	}

	for _, record := range records {
		if err := s.Save(context.Background(), record); err != nil {
			return err
		}
	}
	return nil
}

// Close releases nothing; it exists to satisfy Store
func (s *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
