package market

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/artblock-labs/plinth/store"
)

// Market exposes the marketplace operations over an entity store. Every
// state transition is expressed as a single mutate transform, so concurrent
// transactions on the same listing or board are totally ordered and a racing
// loser observes the winner's already-applied state.
type Market struct {
	store  *store.Store
	logger *slog.Logger
}

// New creates a Market over the given store.
func New(s *store.Store, logger *slog.Logger) *Market {
	if logger == nil {
		logger = slog.Default()
	}
	return &Market{
		store:  s,
		logger: logger,
	}
}

// Seed loads the seed set of every marketplace kind. Idempotent; safe to
// call on every process start.
func (m *Market) Seed(ctx context.Context) error {
	return Registry().SeedAll(ctx, m.store)
}

// Listing returns one listing by id. An id that was never created yields the
// default empty shape; callers check for an empty ID field.
func (m *Market) Listing(ctx context.Context, id string) (NFT, error) {
	return NFTs.Get(ctx, m.store, id)
}

// Listings returns every listing in index order.
func (m *Market) Listings(ctx context.Context) ([]NFT, error) {
	return NFTs.List(ctx, m.store)
}

// Collections returns every collection summary in index order.
func (m *Market) Collections(ctx context.Context) ([]Collection, error) {
	return Collections.List(ctx, m.store)
}

// Users returns every user in index order.
func (m *Market) Users(ctx context.Context) ([]User, error) {
	return Users.List(ctx, m.store)
}

// Boards returns every chat board in index order.
func (m *Market) Boards(ctx context.Context) ([]ChatBoard, error) {
	return ChatBoards.List(ctx, m.store)
}

// PlaceBid records a bid on an auction listing. The bid must exceed the
// current price; on success the listing price becomes the bid amount and a
// Bid event is prepended to the history. A bid that races against a
// concurrent higher bid is rejected deterministically: by the time its
// transform runs it observes the winner's price and fails the comparison.
func (m *Market) PlaceBid(ctx context.Context, listingID, bidder string, amount float64) (NFT, error) {
	nft, err := NFTs.Mutate(ctx, m.store, listingID, func(n NFT) (NFT, error) {
		if n.ID == "" {
			return NFT{}, ErrUnknownListing
		}
		if n.Status != StatusAuction {
			return NFT{}, ErrNotAuction
		}
		if amount <= n.Price {
			return NFT{}, ErrBidTooLow
		}

		n.Price = amount
		n.History = prepend(n.History, HistoryEvent{
			ID:     uuid.NewString(),
			Action: ActionBid,
			Price:  amount,
			From:   bidder,
			Date:   time.Now().UnixMilli(),
		})
		return n, nil
	})
	if err != nil {
		return NFT{}, err
	}

	m.logger.Info("bid placed",
		"listing", listingID,
		"bidder", bidder,
		"amount", amount,
	)
	return nft, nil
}

// BuyNow records a sale of a buy_now listing at its current price. Only the
// Sold event is recorded; the listing stays listed and keeps its creator.
// TODO: delist or transfer ownership on sale once the ownership model lands;
// until then a listing can be sold repeatedly.
func (m *Market) BuyNow(ctx context.Context, listingID, buyer string) (NFT, error) {
	nft, err := NFTs.Mutate(ctx, m.store, listingID, func(n NFT) (NFT, error) {
		if n.ID == "" {
			return NFT{}, ErrUnknownListing
		}
		if n.Status != StatusBuyNow {
			return NFT{}, ErrNotForSale
		}

		n.History = prepend(n.History, HistoryEvent{
			ID:     uuid.NewString(),
			Action: ActionSold,
			Price:  n.Price,
			From:   n.Creator.Name,
			To:     buyer,
			Date:   time.Now().UnixMilli(),
		})
		return n, nil
	})
	if err != nil {
		return NFT{}, err
	}

	m.logger.Info("listing sold",
		"listing", listingID,
		"buyer", buyer,
		"price", nft.Price,
	)
	return nft, nil
}

// Messages returns the message sequence of one board, oldest first.
func (m *Market) Messages(ctx context.Context, boardID string) ([]ChatMessage, error) {
	board, err := ChatBoards.Get(ctx, m.store, boardID)
	if err != nil {
		return nil, err
	}
	if board.ID == "" {
		return nil, ErrUnknownBoard
	}
	return board.Messages, nil
}

// SendMessage appends a message to a board. The message id and timestamp are
// stamped before the transform runs; the append itself is one atomic
// transform, so messages from concurrent senders are never lost or torn.
func (m *Market) SendMessage(ctx context.Context, boardID, userID, text string) (ChatMessage, error) {
	msg := ChatMessage{
		ID:     uuid.NewString(),
		ChatID: boardID,
		UserID: userID,
		Text:   text,
		TS:     time.Now().UnixMilli(),
	}

	_, err := ChatBoards.Mutate(ctx, m.store, boardID, func(b ChatBoard) (ChatBoard, error) {
		if b.ID == "" {
			return ChatBoard{}, ErrUnknownBoard
		}
		b.Messages = append(b.Messages, msg)
		return b, nil
	})
	if err != nil {
		return ChatMessage{}, err
	}
	return msg, nil
}

// prepend inserts ev at the head of history: newest-first by insertion.
func prepend(history []HistoryEvent, ev HistoryEvent) []HistoryEvent {
	next := make([]HistoryEvent, 0, len(history)+1)
	next = append(next, ev)
	return append(next, history...)
}
