package market

import "time"

// Seed sets: the default records loaded once at store initialization.
// Seeding is idempotent; ids already present in a kind's index are skipped.

// SeedUsers returns the default user set.
func SeedUsers() []User {
	return []User{
		{ID: "u1", Name: "alice"},
		{ID: "u2", Name: "bob"},
		{ID: "u3", Name: "carol"},
	}
}

// SeedChatBoards returns the default chat boards with their opening messages.
func SeedChatBoards() []ChatBoard {
	now := time.Now().UnixMilli()
	return []ChatBoard{
		{
			Chat: Chat{ID: "chat1", Title: "General"},
			Messages: []ChatMessage{
				{ID: "m1", ChatID: "chat1", UserID: "u1", Text: "Welcome to the marketplace!", TS: now - 7200_000},
				{ID: "m2", ChatID: "chat1", UserID: "u2", Text: "Anyone watching the Abstract Thoughts auction?", TS: now - 3600_000},
			},
		},
		{
			Chat: Chat{ID: "chat2", Title: "Collectors"},
			Messages: []ChatMessage{
				{ID: "m3", ChatID: "chat2", UserID: "u3", Text: "Floor on Ethereal Glitch is moving.", TS: now - 1800_000},
			},
		},
	}
}

var seedCreators = []Creator{
	{ID: "c1", Name: "NeonDreamer", Avatar: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=100&auto=format&fit=crop&q=60", Verified: true},
	{ID: "c2", Name: "CyberPunk_X", Avatar: "https://images.unsplash.com/photo-1527980965255-d3b416303d12?w=100&auto=format&fit=crop&q=60", Verified: true},
	{ID: "c3", Name: "PixelMaster", Avatar: "https://images.unsplash.com/photo-1633332755192-727a05c4013d?w=100&auto=format&fit=crop&q=60", Verified: false},
}

var seedCollections = []Collection{
	{ID: "col1", Name: "Ethereal Glitch", CoverImage: "https://images.unsplash.com/photo-1620641788421-7a1c342ea42e?w=800&auto=format&fit=crop&q=60", FloorPrice: 1.2, Volume: 450},
	{ID: "col2", Name: "Neon Genesis", CoverImage: "https://images.unsplash.com/photo-1634152962476-4b8a00e1915c?w=800&auto=format&fit=crop&q=60", FloorPrice: 0.8, Volume: 120},
	{ID: "col3", Name: "Abstract Minds", CoverImage: "https://images.unsplash.com/photo-1550684848-fac1c5b4e853?w=800&auto=format&fit=crop&q=60", FloorPrice: 2.5, Volume: 890},
}

// SeedCollections returns the default collection summaries.
func SeedCollections() []Collection {
	return seedCollections
}

// SeedNFTs returns the default listings. Auction deadlines and history
// timestamps are relative to seed time.
func SeedNFTs() []NFT {
	now := time.Now().UnixMilli()
	const day = 24 * 60 * 60 * 1000

	return []NFT{
		{
			ID:          "nft1",
			Title:       "Cyber Samurai #042",
			Description: "A digital warrior from the neon-soaked streets of Neo-Tokyo. This piece explores the intersection of tradition and technology.",
			Image:       "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=800&auto=format&fit=crop&q=60",
			Price:       1.5,
			Currency:    "ETH",
			Creator:     seedCreators[0],
			Collection:  seedCollections[0],
			Category:    "Art",
			Status:      StatusBuyNow,
			Attributes: []Attribute{
				{TraitType: "Background", Value: "Neon City"},
				{TraitType: "Weapon", Value: "Katana"},
				{TraitType: "Rarity", Value: "Legendary"},
			},
			History: []HistoryEvent{
				{ID: "h1", Action: ActionListed, Price: 1.5, From: "NeonDreamer", Date: now - day},
			},
		},
		{
			ID:          "nft2",
			Title:       "Abstract Thoughts",
			Description: "Visualizing the complexity of human thought patterns through generative algorithms.",
			Image:       "https://images.unsplash.com/photo-1633158829585-23ba8f7c8caf?w=800&auto=format&fit=crop&q=60",
			Price:       0.8,
			Currency:    "ETH",
			Creator:     seedCreators[2],
			Collection:  seedCollections[2],
			Category:    "Abstract",
			Status:      StatusAuction,
			EndsAt:      now + 2*day,
			Attributes: []Attribute{
				{TraitType: "Style", Value: "Generative"},
				{TraitType: "Palette", Value: "Monochrome"},
			},
			History: []HistoryEvent{
				{ID: "h2", Action: ActionBid, Price: 0.75, From: "Collector_A", Date: now - 3600_000},
				{ID: "h3", Action: ActionListed, Price: 0.5, From: "PixelMaster", Date: now - 2*day},
			},
		},
		{
			ID:          "nft3",
			Title:       "Neon Horizon",
			Description: "Where the digital sun never sets.",
			Image:       "https://images.unsplash.com/photo-1563089145-599997674d42?w=800&auto=format&fit=crop&q=60",
			Price:       2.1,
			Currency:    "ETH",
			Creator:     seedCreators[1],
			Collection:  seedCollections[1],
			Category:    "Photography",
			Status:      StatusBuyNow,
			Attributes: []Attribute{
				{TraitType: "Location", Value: "Virtual"},
				{TraitType: "Time", Value: "Dusk"},
			},
			History: []HistoryEvent{},
		},
		{
			ID:          "nft4",
			Title:       "Glitch Portrait",
			Description: "Identity in the age of surveillance.",
			Image:       "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=800&auto=format&fit=crop&q=60",
			Price:       0.45,
			Currency:    "ETH",
			Creator:     seedCreators[0],
			Collection:  seedCollections[0],
			Category:    "Art",
			Status:      StatusBuyNow,
			Attributes:  []Attribute{},
			History:     []HistoryEvent{},
		},
		{
			ID:          "nft5",
			Title:       "Cosmic Cube",
			Description: "A 4D object projected into 3D space.",
			Image:       "https://images.unsplash.com/photo-1614730341194-75c607400070?w=800&auto=format&fit=crop&q=60",
			Price:       3.0,
			Currency:    "ETH",
			Creator:     seedCreators[2],
			Collection:  seedCollections[2],
			Category:    "Abstract",
			Status:      StatusAuction,
			EndsAt:      now + day,
			Attributes:  []Attribute{},
			History:     []HistoryEvent{},
		},
		{
			ID:          "nft6",
			Title:       "Retro Gaming Console",
			Description: "Nostalgia for a future that never happened.",
			Image:       "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=800&auto=format&fit=crop&q=60",
			Price:       0.9,
			Currency:    "ETH",
			Creator:     seedCreators[1],
			Collection:  seedCollections[1],
			Category:    "Gaming",
			Status:      StatusBuyNow,
			Attributes:  []Attribute{},
			History:     []HistoryEvent{},
		},
		{
			ID:          "nft7",
			Title:       "Sound Wave #99",
			Description: "Visual representation of a bass drop.",
			Image:       "https://images.unsplash.com/photo-1614624532983-4ce03382d63d?w=800&auto=format&fit=crop&q=60",
			Price:       0.2,
			Currency:    "ETH",
			Creator:     seedCreators[2],
			Collection:  seedCollections[2],
			Category:    "Music",
			Status:      StatusBuyNow,
			Attributes:  []Attribute{},
			History:     []HistoryEvent{},
		},
		{
			ID:          "nft8",
			Title:       "Cyber Cityscape",
			Description: "The verticality of the sprawl.",
			Image:       "https://images.unsplash.com/photo-1573455494060-c5595004fb6c?w=800&auto=format&fit=crop&q=60",
			Price:       5.5,
			Currency:    "ETH",
			Creator:     seedCreators[0],
			Collection:  seedCollections[0],
			Category:    "Art",
			Status:      StatusAuction,
			EndsAt:      now + 5*day,
			Attributes:  []Attribute{},
			History:     []HistoryEvent{},
		},
	}
}
