package store

import (
	"context"
	"slices"
)

// index tracks the universe of ids for one kind. It follows the same
// single-writer-at-a-time discipline as a record cell: contains/add/list are
// serialized per kind, which is what makes concurrent creates of the same id
// collapse into one create and one ErrAlreadyExists.
//
// The id list is persisted through the Backend in insertion order.
type index struct {
	kind string
	name string
	sem  chan struct{}
}

func newIndex(kind, name string) *index {
	return &index{
		kind: kind,
		name: name,
		sem:  make(chan struct{}, 1),
	}
}

func (ix *index) acquire(ctx context.Context) error {
	select {
	case ix.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (ix *index) release() {
	<-ix.sem
}

// contains reports whether id is registered. Caller must hold the index lock.
func (ix *index) contains(ctx context.Context, backend Backend, id string) (bool, error) {
	ids, err := backend.GetIndex(ctx, ix.kind)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

// add registers id, preserving insertion order. No-op if already present.
// Caller must hold the index lock.
func (ix *index) add(ctx context.Context, backend Backend, id string) error {
	ids, err := backend.GetIndex(ctx, ix.kind)
	if err != nil {
		return err
	}
	if slices.Contains(ids, id) {
		return nil
	}
	return backend.PutIndex(ctx, ix.kind, append(ids, id))
}

// list returns all registered ids in insertion order.
func (ix *index) list(ctx context.Context, backend Backend) ([]string, error) {
	if err := ix.acquire(ctx); err != nil {
		return nil, err
	}
	defer ix.release()

	return backend.GetIndex(ctx, ix.kind)
}
