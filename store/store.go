package store

import (
	"context"
	"sync"
)

// Store maps (kind, id) pairs to their mutation cells, lazily materializing
// cells and indexes on first access. All typed operations go through [Kind];
// the Store itself only owns the concurrency structure and the backend.
type Store struct {
	backend Backend

	mu      sync.Mutex
	cells   map[cellKey]*cell
	indexes map[string]*index
	seeded  map[string]bool
}

type cellKey struct {
	kind string
	id   string
}

// New creates a Store over the given backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		cells:   make(map[cellKey]*cell),
		indexes: make(map[string]*index),
		seeded:  make(map[string]bool),
	}
}

// cell returns the mutation cell for (kind, id), creating it on first use.
func (s *Store) cell(kind, id string) *cell {
	key := cellKey{kind: kind, id: id}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cells[key]
	if !ok {
		c = newCell(kind, id)
		s.cells[key] = c
	}
	return c
}

// index returns the secondary index for a kind, creating it on first use.
func (s *Store) index(kind, name string) *index {
	s.mu.Lock()
	defer s.mu.Unlock()

	ix, ok := s.indexes[kind]
	if !ok {
		ix = newIndex(kind, name)
		s.indexes[kind] = ix
	}
	return ix
}

// kindSeeded reports whether a kind's seed set has already been applied in
// this process.
func (s *Store) kindSeeded(kind string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seeded[kind]
}

// markSeeded records that a kind's seed set was applied. Only set after the
// whole seed pass succeeded, so a failed pass is retried in full (skipping
// already-created ids).
func (s *Store) markSeeded(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seeded[kind] = true
}

// createLocked installs a record and registers its id as one logical step,
// holding the kind's index lock for the duration. ifAbsent selects between
// Create semantics (false: duplicate is ErrAlreadyExists) and seed semantics
// (true: duplicate is silently skipped, never overwritten).
func (s *Store) createLocked(ctx context.Context, ix *index, kind, id string, data []byte, ifAbsent bool) error {
	if err := ix.acquire(ctx); err != nil {
		return err
	}
	defer ix.release()

	exists, err := ix.contains(ctx, s.backend, id)
	if err != nil {
		return err
	}
	if exists {
		if ifAbsent {
			return nil
		}
		return ErrAlreadyExists
	}

	// Record first, then index: an id is only published for enumeration once
	// its record is durable.
	if err := s.cell(kind, id).put(ctx, s.backend, data); err != nil {
		return err
	}
	return ix.add(ctx, s.backend, id)
}
