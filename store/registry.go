package store

import "context"

// Seeder is the kind-erased surface a Registry needs: every Kind[T]
// implements it regardless of record type.
type Seeder interface {
	// KindName returns the kind's unique name.
	KindName() string

	// EnsureSeeded loads the kind's seed set into the store, once.
	EnsureSeeded(ctx context.Context, s *Store) error
}

// Registry holds all known kinds so an application can seed everything with
// one call at startup.
type Registry struct {
	kinds  []Seeder
	byName map[string]Seeder
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds:  []Seeder{},
		byName: make(map[string]Seeder),
	}
}

// Register adds a kind to the registry. Registering the same kind name twice
// replaces the earlier entry in the lookup but keeps registration order.
func (r *Registry) Register(k Seeder) {
	r.kinds = append(r.kinds, k)
	r.byName[k.KindName()] = k
}

// Kind returns the registered kind with the given name, or nil.
func (r *Registry) Kind(name string) Seeder {
	return r.byName[name]
}

// Kinds returns all registered kinds in registration order.
func (r *Registry) Kinds() []Seeder {
	return r.kinds
}

// SeedAll seeds every registered kind in registration order, stopping at the
// first failure. Safe to call repeatedly; already-seeded kinds are skipped.
func (r *Registry) SeedAll(ctx context.Context, s *Store) error {
	for _, k := range r.kinds {
		if err := k.EnsureSeeded(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
