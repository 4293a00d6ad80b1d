package store

import (
	"context"
	"slices"
	"sync"

	"github.com/artblock-labs/plinth/internal/keyspace"
)

// MemoryBackend is an in-process Backend. It is the default backend for
// tests and single-node deployments that do not need durability across
// restarts; the dynamo package provides the durable equivalent.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string][]byte
	indexes map[string][]string
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		records: make(map[string][]byte),
		indexes: make(map[string][]string),
	}
}

// GetRecord implements Backend.
func (m *MemoryBackend) GetRecord(_ context.Context, kind, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.records[keyspace.RecordKey(kind, id)]
	if !ok {
		return nil, nil
	}
	return slices.Clone(data), nil
}

// PutRecord implements Backend.
func (m *MemoryBackend) PutRecord(_ context.Context, kind, id string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[keyspace.RecordKey(kind, id)] = slices.Clone(data)
	return nil
}

// GetIndex implements Backend.
func (m *MemoryBackend) GetIndex(_ context.Context, kind string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids, ok := m.indexes[keyspace.IndexKey(kind)]
	if !ok {
		return nil, nil
	}
	return slices.Clone(ids), nil
}

// PutIndex implements Backend.
func (m *MemoryBackend) PutIndex(_ context.Context, kind string, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.indexes[keyspace.IndexKey(kind)] = slices.Clone(ids)
	return nil
}
