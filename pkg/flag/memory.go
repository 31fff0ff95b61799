package flag

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-memory implementation of the Store interface.
// It's useful for testing and single-process applications.
type MemoryStore struct {
	records map[string]*Record
	mu      sync.RWMutex
}

// NewMemoryStore creates a new in-memory flag store, optionally seeded with
// initial records. Nil seeds are skipped.
func NewMemoryStore(initial ...*Record) *MemoryStore {
	store := &MemoryStore{
		records: make(map[string]*Record),
	}

	for _, record := range initial {
		if record == nil {
			continue
		}

		// Store a deep copy so callers cannot mutate internal state.
		recordCopy := *record
		if record.AllowedUsers != nil {
			recordCopy.AllowedUsers = slices.Clone(record.AllowedUsers)
		}
		store.records[record.Name] = &recordCopy
	}

	return store
}

// SetFlag creates or wholesale-replaces the record for name.
func (m *MemoryStore) SetFlag(ctx context.Context, name string, enabled bool, allowedUsers ...string) error {
	record := &Record{
		Name:    name,
		Enabled: enabled,
	}
	if len(allowedUsers) > 0 {
		record.AllowedUsers = slices.Clone(allowedUsers)
	}

	m.mu.Lock()
	m.records[name] = record
	m.mu.Unlock()

	return nil
}

// GetRecord retrieves a record by name, or nil when the flag was never written.
func (m *MemoryStore) GetRecord(ctx context.Context, name string) (*Record, error) {
	m.mu.RLock()
	record, exists := m.records[name]
	m.mu.RUnlock()

	if !exists {
		return nil, nil
	}

	// Return a copy to prevent external modification.
	recordCopy := *record
	if record.AllowedUsers != nil {
		recordCopy.AllowedUsers = slices.Clone(record.AllowedUsers)
	}
	return &recordCopy, nil
}

// IsUserAllowed applies the Store decision semantics against the in-memory state.
func (m *MemoryStore) IsUserAllowed(ctx context.Context, name, userID string) (bool, error) {
	m.mu.RLock()
	record, exists := m.records[name]
	m.mu.RUnlock()

	if !exists || !record.Enabled {
		return false, nil
	}
	if len(record.AllowedUsers) == 0 {
		return true, nil
	}
	return slices.Contains(record.AllowedUsers, userID), nil
}
