// Package store provides a key-addressed entity store with per-key serialized
// mutation and per-kind secondary indexes.
//
// Plinth models application state as one record per (kind, id) pair. Each key
// owns an isolated mutation domain: reads and read-modify-write updates on the
// same key are totally ordered, while operations on different keys proceed
// concurrently. Every kind carries a secondary index of live ids used for
// enumeration and idempotent seeding.
//
// # Kinds
//
// A [Kind] is a configuration value describing one category of records:
//
//	var NFTs = store.Kind[NFT]{
//	    Name:      "nft",
//	    IndexName: "nfts",
//	    Initial:   func() NFT { return NFT{Currency: "ETH", Status: "buy_now"} },
//	    Seed:      SeedNFTs,
//	}
//
// Record types implement [Record] by exposing their embedded id. All store
// operations go through the kind:
//
//	nft, err := NFTs.Get(ctx, s, "nft1")
//	nft, err = NFTs.Mutate(ctx, s, "nft1", func(n NFT) (NFT, error) { ... })
//	all, err := NFTs.List(ctx, s)
//
// # Mutation semantics
//
// Mutate applies a transform to the current record and atomically installs the
// result. The transform may reject the update by returning an error, in which
// case the stored record is left untouched and the error propagates unchanged.
// The backend write happens inside the per-key critical section, so a
// successful return guarantees the new record is durable.
//
// Get on an id that was never created returns the kind's Initial value rather
// than an error; callers detect absence by checking for an empty id.
//
// # Backends
//
// Persistence goes through the [Backend] interface. [MemoryBackend] keeps
// everything in process; the dynamo package provides a DynamoDB-backed
// implementation with the same contract. A Store instance assumes it is the
// only writer for the keys it serves.
//
// # Errors
//
//   - [ErrAlreadyExists] - Create was called with an id that is already indexed
//   - [ErrIDMutated] - a transform attempted to change a record's id
//
// Backend faults are returned wrapped and are distinct from domain rejections
// produced by transforms.
package store
