package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Record is the constraint for storable payloads. Every record carries its
// own id; the id used to address a record always equals this field.
type Record interface {
	RecordID() string
}

// Kind is the per-category configuration consumed by the generic store: a
// unique name, the name of the kind's secondary index, the default record
// shape returned for ids that were never created, and an optional seed set
// loaded exactly once.
type Kind[T Record] struct {
	// Name is the unique kind name, e.g. "nft". Must not contain '#'.
	Name string

	// IndexName names the kind's id index, e.g. "nfts".
	IndexName string

	// Initial returns the default record shape. Its id must be empty;
	// callers use an empty id to detect "never created".
	Initial func() T

	// Seed returns the records loaded once at startup. May be nil.
	Seed func() []T
}

// KindName returns the kind's unique name. Implements [Seeder].
func (k Kind[T]) KindName() string { return k.Name }

// Get returns the current record for id, or the kind's Initial value if the
// id has never been created. It never blocks on unrelated keys.
func (k Kind[T]) Get(ctx context.Context, s *Store, id string) (T, error) {
	raw, err := s.cell(k.Name, id).get(ctx, s.backend)
	if err != nil {
		return k.zero(), fmt.Errorf("get %s/%s: %w", k.Name, id, err)
	}
	if raw == nil {
		return k.Initial(), nil
	}
	return k.decode(raw)
}

// Mutate applies transform to the current record for id and atomically
// installs the result, returning it. If transform returns an error the stored
// record is unchanged and the error propagates to the caller unchanged.
// Concurrent Mutate calls on the same id are totally ordered; calls on
// different ids never block each other.
func (k Kind[T]) Mutate(ctx context.Context, s *Store, id string, transform func(T) (T, error)) (T, error) {
	raw, err := s.cell(k.Name, id).mutate(ctx, s.backend, func(current []byte) ([]byte, error) {
		rec := k.Initial()
		if current != nil {
			var err error
			rec, err = k.decode(current)
			if err != nil {
				return nil, err
			}
		}

		before := rec.RecordID()
		next, err := transform(rec)
		if err != nil {
			return nil, err
		}
		if before != "" && next.RecordID() != before {
			return nil, ErrIDMutated
		}

		return json.Marshal(next)
	})
	if err != nil {
		return k.zero(), err
	}
	return k.decode(raw)
}

// List returns every record of the kind, in index (insertion) order.
func (k Kind[T]) List(ctx context.Context, s *Store) ([]T, error) {
	ids, err := s.index(k.Name, k.IndexName).list(ctx, s.backend)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", k.Name, err)
	}

	records := make([]T, 0, len(ids))
	for _, id := range ids {
		rec, err := k.Get(ctx, s, id)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Create installs rec and registers its id in the kind's index as one
// logical step. Returns ErrAlreadyExists if the id is already registered.
func (k Kind[T]) Create(ctx context.Context, s *Store, rec T) error {
	id := rec.RecordID()
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", k.Name, id, err)
	}

	ix := s.index(k.Name, k.IndexName)
	return s.createLocked(ctx, ix, k.Name, id, data, false)
}

// EnsureSeeded loads the kind's seed set. Ids already present in the index
// are skipped, never overwritten, so repeated calls are idempotent. A kind
// is seeded at most once per Store lifetime; later calls return immediately.
func (k Kind[T]) EnsureSeeded(ctx context.Context, s *Store) error {
	if k.Seed == nil || s.kindSeeded(k.Name) {
		return nil
	}

	ix := s.index(k.Name, k.IndexName)
	for _, rec := range k.Seed() {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode seed %s/%s: %w", k.Name, rec.RecordID(), err)
		}
		if err := s.createLocked(ctx, ix, k.Name, rec.RecordID(), data, true); err != nil {
			return fmt.Errorf("seed %s/%s: %w", k.Name, rec.RecordID(), err)
		}
	}

	s.markSeeded(k.Name)
	return nil
}

// decode unmarshals raw on top of the kind's Initial value, so fields absent
// from older stored records keep their defaults.
func (k Kind[T]) decode(raw []byte) (T, error) {
	rec := k.Initial()
	if err := json.Unmarshal(raw, &rec); err != nil {
		return k.zero(), fmt.Errorf("decode %s record: %w", k.Name, err)
	}
	return rec, nil
}

func (k Kind[T]) zero() T {
	var zero T
	return zero
}
