package market_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"testing"

	"github.com/artblock-labs/plinth/market"
	"github.com/artblock-labs/plinth/store"
)

func newMarket(t *testing.T) *market.Market {
	t.Helper()

	s := store.New(store.NewMemoryBackend())
	m := market.New(s, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := m.Seed(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return m
}

// --- Seeding ---

func TestSeed_PopulatesAllKinds(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	nfts, err := m.Listings(ctx)
	if err != nil {
		t.Fatalf("listings failed: %v", err)
	}
	if len(nfts) != 8 {
		t.Errorf("expected 8 listings, got %d", len(nfts))
	}

	cols, err := m.Collections(ctx)
	if err != nil {
		t.Fatalf("collections failed: %v", err)
	}
	if len(cols) != 3 {
		t.Errorf("expected 3 collections, got %d", len(cols))
	}

	users, err := m.Users(ctx)
	if err != nil {
		t.Fatalf("users failed: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("expected 3 users, got %d", len(users))
	}

	boards, err := m.Boards(ctx)
	if err != nil {
		t.Fatalf("boards failed: %v", err)
	}
	if len(boards) != 2 {
		t.Errorf("expected 2 chat boards, got %d", len(boards))
	}
}

func TestSeed_SecondRunIsNoop(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	// Mutate a seeded record, then seed again; the mutation must survive.
	if _, err := m.PlaceBid(ctx, "nft2", "bob", 0.85); err != nil {
		t.Fatalf("bid failed: %v", err)
	}
	if err := m.Seed(ctx); err != nil {
		t.Fatalf("reseed failed: %v", err)
	}

	nft, err := m.Listing(ctx, "nft2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if nft.Price != 0.85 {
		t.Errorf("reseed clobbered record: price %v", nft.Price)
	}

	nfts, _ := m.Listings(ctx)
	if len(nfts) != 8 {
		t.Errorf("expected 8 listings after reseed, got %d", len(nfts))
	}
}

// --- Get ---

func TestListing_AbsentIsEmptyShape(t *testing.T) {
	m := newMarket(t)

	nft, err := m.Listing(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error for absent id: %v", err)
	}
	if nft.ID != "" {
		t.Errorf("expected empty id, got %q", nft.ID)
	}
}

// --- PlaceBid ---

func TestPlaceBid_TooLowFailsAndLeavesRecordUntouched(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	before, err := m.Listing(ctx, "nft2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if before.Status != market.StatusAuction || before.Price != 0.8 {
		t.Fatalf("unexpected seed state: %v %v", before.Status, before.Price)
	}

	_, err = m.PlaceBid(ctx, "nft2", "bob", 0.79)
	if !errors.Is(err, market.ErrBidTooLow) {
		t.Fatalf("expected ErrBidTooLow, got %v", err)
	}
	if err.Error() != "Bid must be higher than current price" {
		t.Errorf("unexpected rejection reason: %q", err.Error())
	}

	after, _ := m.Listing(ctx, "nft2")
	if !reflect.DeepEqual(before, after) {
		t.Error("rejected bid must leave the record unchanged")
	}
}

func TestPlaceBid_EqualToPriceFails(t *testing.T) {
	m := newMarket(t)

	_, err := m.PlaceBid(context.Background(), "nft2", "bob", 0.8)
	if !errors.Is(err, market.ErrBidTooLow) {
		t.Fatalf("expected ErrBidTooLow for amount == price, got %v", err)
	}
}

func TestPlaceBid_Success(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	before, _ := m.Listing(ctx, "nft2")

	nft, err := m.PlaceBid(ctx, "nft2", "bob", 0.85)
	if err != nil {
		t.Fatalf("bid failed: %v", err)
	}
	if nft.Price != 0.85 {
		t.Errorf("expected price 0.85, got %v", nft.Price)
	}
	if len(nft.History) != len(before.History)+1 {
		t.Fatalf("expected one new history entry, got %d -> %d", len(before.History), len(nft.History))
	}

	head := nft.History[0]
	if head.Action != market.ActionBid {
		t.Errorf("expected Bid entry at head, got %s", head.Action)
	}
	if head.From != "bob" {
		t.Errorf("expected from 'bob', got %q", head.From)
	}
	if head.Price != 0.85 {
		t.Errorf("expected entry price 0.85, got %v", head.Price)
	}
	if head.ID == "" {
		t.Error("expected a fresh event id")
	}
}

func TestPlaceBid_OnBuyNowListingFails(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	before, _ := m.Listing(ctx, "nft1")

	_, err := m.PlaceBid(ctx, "nft1", "bob", 99)
	if !errors.Is(err, market.ErrNotAuction) {
		t.Fatalf("expected ErrNotAuction, got %v", err)
	}

	after, _ := m.Listing(ctx, "nft1")
	if !reflect.DeepEqual(before, after) {
		t.Error("status-mismatch bid must leave the record unchanged")
	}
}

func TestPlaceBid_UnknownListing(t *testing.T) {
	m := newMarket(t)

	_, err := m.PlaceBid(context.Background(), "ghost", "bob", 1)
	if !errors.Is(err, market.ErrUnknownListing) {
		t.Fatalf("expected ErrUnknownListing, got %v", err)
	}
	if !market.IsDomain(err) {
		t.Error("unknown listing must be a domain rejection")
	}
}

func TestPlaceBid_ConcurrentBidsResolveDeterministically(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	const bidders = 20
	var wg sync.WaitGroup
	results := make(chan error, bidders)

	var maxAmount float64
	for i := 0; i < bidders; i++ {
		amount := 0.81 + float64(i)*0.01
		if amount > maxAmount {
			maxAmount = amount
		}
		wg.Add(1)
		go func(i int, amount float64) {
			defer wg.Done()
			_, err := m.PlaceBid(ctx, "nft2", fmt.Sprintf("bidder%d", i), amount)
			results <- err
		}(i, amount)
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, market.ErrBidTooLow):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins+losses != bidders {
		t.Fatalf("accounting broken: %d wins, %d losses", wins, losses)
	}
	if wins < 1 {
		t.Fatal("the highest bid must always win")
	}

	nft, err := m.Listing(ctx, "nft2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if nft.Price != maxAmount {
		t.Errorf("expected final price %v, got %v", maxAmount, nft.Price)
	}

	// One Bid entry per successful bid, newest first, strictly decreasing.
	newEntries := nft.History[:wins]
	for i, ev := range newEntries {
		if ev.Action != market.ActionBid {
			t.Fatalf("entry %d: expected Bid, got %s", i, ev.Action)
		}
		if i > 0 && newEntries[i-1].Price <= ev.Price {
			t.Errorf("history not newest-first by price: %v then %v", newEntries[i-1].Price, ev.Price)
		}
	}
	if newEntries[0].Price != maxAmount {
		t.Errorf("expected newest entry at %v, got %v", maxAmount, newEntries[0].Price)
	}
}

// --- BuyNow ---

func TestBuyNow_RecordsSale(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	nft, err := m.BuyNow(ctx, "nft1", "alice")
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if nft.Price != 1.5 {
		t.Errorf("expected price unchanged at 1.5, got %v", nft.Price)
	}
	if nft.Status != market.StatusBuyNow {
		t.Errorf("sale must not change status, got %s", nft.Status)
	}

	head := nft.History[0]
	if head.Action != market.ActionSold {
		t.Fatalf("expected Sold entry at head, got %s", head.Action)
	}
	if head.To != "alice" {
		t.Errorf("expected to 'alice', got %q", head.To)
	}
	if head.From != "NeonDreamer" {
		t.Errorf("expected from creator 'NeonDreamer', got %q", head.From)
	}
	if head.Price != 1.5 {
		t.Errorf("expected sale price 1.5, got %v", head.Price)
	}
}

func TestBuyNow_ListingStaysPurchasable(t *testing.T) {
	// No delisting on sale: a second purchase succeeds and only history
	// accumulates. Known gap in the domain model, kept deliberately.
	m := newMarket(t)
	ctx := context.Background()

	if _, err := m.BuyNow(ctx, "nft1", "alice"); err != nil {
		t.Fatalf("first buy failed: %v", err)
	}
	nft, err := m.BuyNow(ctx, "nft1", "carol")
	if err != nil {
		t.Fatalf("second buy failed: %v", err)
	}

	if nft.History[0].To != "carol" || nft.History[1].To != "alice" {
		t.Errorf("expected two Sold entries newest-first, got %+v", nft.History[:2])
	}
}

func TestBuyNow_OnAuctionFails(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	before, _ := m.Listing(ctx, "nft2")

	_, err := m.BuyNow(ctx, "nft2", "alice")
	if !errors.Is(err, market.ErrNotForSale) {
		t.Fatalf("expected ErrNotForSale, got %v", err)
	}
	if err.Error() != "Not for sale" {
		t.Errorf("unexpected rejection reason: %q", err.Error())
	}

	after, _ := m.Listing(ctx, "nft2")
	if !reflect.DeepEqual(before, after) {
		t.Error("failed buy must leave the record unchanged")
	}
}

func TestBuyNow_UnknownListing(t *testing.T) {
	m := newMarket(t)

	_, err := m.BuyNow(context.Background(), "ghost", "alice")
	if !errors.Is(err, market.ErrUnknownListing) {
		t.Fatalf("expected ErrUnknownListing, got %v", err)
	}
}

// --- Chat ---

func TestSendMessage_Appends(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	before, err := m.Messages(ctx, "chat1")
	if err != nil {
		t.Fatalf("messages failed: %v", err)
	}

	msg, err := m.SendMessage(ctx, "chat1", "u2", "gm")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if msg.ID == "" {
		t.Error("expected a fresh message id")
	}
	if msg.ChatID != "chat1" || msg.UserID != "u2" || msg.Text != "gm" {
		t.Errorf("unexpected message: %+v", msg)
	}
	if msg.TS == 0 {
		t.Error("expected a timestamp")
	}

	after, err := m.Messages(ctx, "chat1")
	if err != nil {
		t.Fatalf("messages failed: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d messages, got %d", len(before)+1, len(after))
	}
	if last := after[len(after)-1]; last.ID != msg.ID {
		t.Errorf("expected new message appended last, got %+v", last)
	}
}

func TestSendMessage_ConcurrentSendersLoseNothing(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	before, err := m.Messages(ctx, "chat2")
	if err != nil {
		t.Fatalf("messages failed: %v", err)
	}

	const senders = 25
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := m.SendMessage(ctx, "chat2", "u1", fmt.Sprintf("msg %d", i)); err != nil {
				t.Errorf("send %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	after, err := m.Messages(ctx, "chat2")
	if err != nil {
		t.Fatalf("messages failed: %v", err)
	}
	if len(after) != len(before)+senders {
		t.Errorf("expected %d messages, got %d", len(before)+senders, len(after))
	}

	seen := make(map[string]bool)
	for _, msg := range after {
		if seen[msg.ID] {
			t.Errorf("duplicate message id %s", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestSendMessage_UnknownBoard(t *testing.T) {
	m := newMarket(t)

	_, err := m.SendMessage(context.Background(), "ghost", "u1", "hello?")
	if !errors.Is(err, market.ErrUnknownBoard) {
		t.Fatalf("expected ErrUnknownBoard, got %v", err)
	}

	// No board record may have been created as a side effect.
	boards, err := m.Boards(context.Background())
	if err != nil {
		t.Fatalf("boards failed: %v", err)
	}
	if len(boards) != 2 {
		t.Errorf("expected 2 boards, got %d", len(boards))
	}
}

// --- Errors ---

func TestIsDomain(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"domain sentinel", market.ErrBidTooLow, true},
		{"wrapped domain", fmt.Errorf("bid: %w", market.ErrNotAuction), true},
		{"plain error", errors.New("dial tcp: timeout"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := market.IsDomain(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
