package market

import "github.com/artblock-labs/plinth/store"

// Kind declarations: one per entity category, each with its index name,
// default shape and seed set. The store is parameterized by these values;
// there is no per-kind store code.

var Users = store.Kind[User]{
	Name:      "user",
	IndexName: "users",
	Initial:   func() User { return User{} },
	Seed:      SeedUsers,
}

var ChatBoards = store.Kind[ChatBoard]{
	Name:      "chat",
	IndexName: "chats",
	Initial:   func() ChatBoard { return ChatBoard{Messages: []ChatMessage{}} },
	Seed:      SeedChatBoards,
}

var NFTs = store.Kind[NFT]{
	Name:      "nft",
	IndexName: "nfts",
	Initial: func() NFT {
		return NFT{
			Currency:   "ETH",
			Category:   "Art",
			Status:     StatusBuyNow,
			Attributes: []Attribute{},
			History:    []HistoryEvent{},
		}
	},
	Seed: SeedNFTs,
}

var Collections = store.Kind[Collection]{
	Name:      "collection",
	IndexName: "collections",
	Initial:   func() Collection { return Collection{} },
	Seed:      SeedCollections,
}

// Registry returns a registry of every marketplace kind, in seed order.
func Registry() *store.Registry {
	r := store.NewRegistry()
	r.Register(Users)
	r.Register(ChatBoards)
	r.Register(NFTs)
	r.Register(Collections)
	return r
}
