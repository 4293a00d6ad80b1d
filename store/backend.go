package store

import "context"

// Backend persists records and per-kind index id lists.
//
// Implementations must treat an absent record or index as (nil, nil) rather
// than an error; absence is a normal state for this store. Any error returned
// is an infrastructure fault, never a domain rejection, and is safe for the
// caller to retry.
//
// The store serializes all writes for a given record and for a given kind's
// index, so implementations do not need their own per-key locking.
type Backend interface {
	// GetRecord returns the serialized record for (kind, id), or nil if the
	// record has never been written.
	GetRecord(ctx context.Context, kind, id string) ([]byte, error)

	// PutRecord durably installs data as the record for (kind, id).
	PutRecord(ctx context.Context, kind, id string, data []byte) error

	// GetIndex returns the ordered id list for a kind, or nil if the index
	// has never been written.
	GetIndex(ctx context.Context, kind string) ([]string, error)

	// PutIndex durably installs ids as the full index for a kind.
	PutIndex(ctx context.Context, kind string, ids []string) error
}
