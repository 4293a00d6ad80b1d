// Package market implements the marketplace domain on top of the entity
// store: users, chat boards, NFT listings and collections, plus the bid,
// buy-now and chat-append transactions.
package market

// ListingStatus determines which transactions are legal on a listing.
type ListingStatus string

const (
	StatusBuyNow  ListingStatus = "buy_now"
	StatusAuction ListingStatus = "auction"
)

// HistoryAction is the type of a listing history event.
type HistoryAction string

const (
	ActionListed HistoryAction = "Listed"
	ActionSold   HistoryAction = "Sold"
	ActionBid    HistoryAction = "Bid"
)

// User is a marketplace account.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (u User) RecordID() string { return u.ID }

// Chat describes one chat board.
type Chat struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ChatMessage is one message on a board. TS is epoch milliseconds.
type ChatMessage struct {
	ID     string `json:"id"`
	ChatID string `json:"chatId"`
	UserID string `json:"userId"`
	Text   string `json:"text"`
	TS     int64  `json:"ts"`
}

// ChatBoard is the stored record for one board: the board itself plus its
// append-only message sequence.
type ChatBoard struct {
	Chat
	Messages []ChatMessage `json:"messages"`
}

func (b ChatBoard) RecordID() string { return b.ID }

// Creator identifies who listed an NFT.
type Creator struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
}

// Collection is an aggregate summary record; read-mostly, not mutated by
// bid or buy.
type Collection struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CoverImage string  `json:"coverImage"`
	FloorPrice float64 `json:"floorPrice"`
	Volume     float64 `json:"volume"`
}

func (c Collection) RecordID() string { return c.ID }

// Attribute is one trait on a listing.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// HistoryEvent is one entry in a listing's append-only history log.
// Date is epoch milliseconds; history is ordered newest-first.
type HistoryEvent struct {
	ID     string        `json:"id"`
	Action HistoryAction `json:"action"`
	Price  float64       `json:"price"`
	From   string        `json:"from"`
	To     string        `json:"to,omitempty"`
	Date   int64         `json:"date"`
}

// NFT is one marketplace listing. Price reflects the current ask (buy_now)
// or the current highest bid (auction).
type NFT struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Price       float64        `json:"price"`
	Currency    string         `json:"currency"`
	Creator     Creator        `json:"creator"`
	Collection  Collection     `json:"collection"`
	Category    string         `json:"category"`
	Status      ListingStatus  `json:"status"`
	EndsAt      int64          `json:"endsAt,omitempty"`
	Attributes  []Attribute    `json:"attributes"`
	History     []HistoryEvent `json:"history"`
}

func (n NFT) RecordID() string { return n.ID }
