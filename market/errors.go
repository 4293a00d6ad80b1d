package market

import "errors"

// Error is a business-rule rejection. The Reason is human-readable and safe
// to surface directly to the end user. A transform that returns an Error
// leaves the stored record unchanged, and retrying without new input will
// fail again; this is distinct from an infrastructure fault, which is opaque
// and safe to retry.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return e.Reason }

var (
	// ErrNotAuction is returned when bidding on a listing that is not an
	// auction.
	ErrNotAuction = &Error{Reason: "Not an auction"}

	// ErrBidTooLow is returned when a bid does not exceed the current price.
	ErrBidTooLow = &Error{Reason: "Bid must be higher than current price"}

	// ErrNotForSale is returned when buying a listing that is not buy_now.
	ErrNotForSale = &Error{Reason: "Not for sale"}

	// ErrUnknownListing is returned when a transaction addresses a listing
	// id that was never created.
	ErrUnknownListing = &Error{Reason: "Listing not found"}

	// ErrUnknownBoard is returned when a message is sent to a chat board
	// that was never created.
	ErrUnknownBoard = &Error{Reason: "Chat board not found"}
)

// IsDomain reports whether err is a business-rule rejection rather than an
// infrastructure fault.
func IsDomain(err error) bool {
	var de *Error
	return errors.As(err, &de)
}
