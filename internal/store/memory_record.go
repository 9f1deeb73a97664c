package store

import (
	"context"
	"sync"
)

// memoryRecordStore keeps records in a map guarded by a RWMutex. It is meant
// for development and tests; records do not survive a restart.
type memoryRecordStore struct {
	mu      sync.RWMutex
	records map[string]string
}

// NewMemoryRecordStore returns an empty in-memory [RecordStore].
func NewMemoryRecordStore() RecordStore {
	return &memoryRecordStore{
		records: make(map[string]string),
	}
}

func (m *memoryRecordStore) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = value
	return nil
}

func (m *memoryRecordStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return "", ErrRecordNotFound
	}

	return value, nil
}
