package store

import "context"

// cell owns exclusive access to one entity record. Operations on the same
// cell are totally ordered; cells for different keys share nothing.
//
// The lock is a 1-slot channel rather than a sync.Mutex so that a caller
// waiting behind an in-flight operation can give up when its context is
// cancelled. A cancelled waiter never ran its transform, so the record is
// untouched; once the lock is held, the transform either fully commits or
// the record stays as it was.
type cell struct {
	kind string
	id   string
	sem  chan struct{}
}

func newCell(kind, id string) *cell {
	return &cell{
		kind: kind,
		id:   id,
		sem:  make(chan struct{}, 1),
	}
}

func (c *cell) acquire(ctx context.Context) error {
	select {
	case c.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *cell) release() {
	<-c.sem
}

// get returns the current serialized record, or nil if never written.
// It takes the cell lock so the snapshot cannot interleave with a mutate.
func (c *cell) get(ctx context.Context, backend Backend) ([]byte, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()

	return backend.GetRecord(ctx, c.kind, c.id)
}

// mutate applies transform to the current serialized record and installs the
// result. transform receives nil when the record has never been written. If
// transform returns an error the record is left unchanged and the error
// propagates to the caller as-is.
func (c *cell) mutate(ctx context.Context, backend Backend, transform func([]byte) ([]byte, error)) ([]byte, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()

	current, err := backend.GetRecord(ctx, c.kind, c.id)
	if err != nil {
		return nil, err
	}

	next, err := transform(current)
	if err != nil {
		return nil, err
	}

	if err := backend.PutRecord(ctx, c.kind, c.id, next); err != nil {
		return nil, err
	}
	return next, nil
}

// put installs data unconditionally. Used by the create path, which holds the
// kind's index lock and has already established that the record is absent.
func (c *cell) put(ctx context.Context, backend Backend, data []byte) error {
	if err := c.acquire(ctx); err != nil {
		return err
	}
	defer c.release()

	return backend.PutRecord(ctx, c.kind, c.id, data)
}
