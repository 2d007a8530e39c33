package registrar

import (
	"errors"

	"github.com/goodnatureofminers/tla-registrar/internal/storage"
)

var (
	ErrInvalidName        = errors.New("invalid name")
	ErrNotAuctioned       = errors.New("name is long enough to be registered without auction")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidPublicKey   = errors.New("invalid public key")
	ErrNotReleased        = errors.New("name is not released yet")
	ErrNotOpen            = errors.New("window is not open yet")
	ErrWindowClosed       = errors.New("bidding window closed")
	ErrWindowExpired      = errors.New("reveal window expired")
	ErrDuplicateBid       = errors.New("bidder already committed")
	ErrNoSuchAuction      = errors.New("no auction for name")
	ErrNoSuchBid          = errors.New("no commitment for bidder")
	ErrHashMismatch       = errors.New("reveal does not match commitment")
	ErrAlreadyRevealed    = errors.New("bid already revealed")
	ErrForfeited          = errors.New("bid forfeited")
	ErrInsufficientEscrow = errors.New("revealed amount exceeds escrowed deposit")
	ErrNotWinner          = errors.New("caller is not the winner")
	ErrIsWinner           = errors.New("winner settles through claim")
	ErrNotResolved        = errors.New("auction is not resolved")
	ErrAlreadyResolved    = errors.New("auction already resolved")
	ErrAlreadyDone        = errors.New("name already claimed")
	ErrAlreadyRefunded    = errors.New("escrow already refunded")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidName, "invalid_name"},
	{ErrNotAuctioned, "not_auctioned"},
	{ErrInvalidAccount, "invalid_account"},
	{ErrInvalidAmount, "invalid_amount"},
	{ErrInvalidPublicKey, "invalid_public_key"},
	{ErrNotReleased, "not_released"},
	{ErrNotOpen, "not_open"},
	{ErrWindowClosed, "window_closed"},
	{ErrWindowExpired, "window_expired"},
	{ErrDuplicateBid, "duplicate_bid"},
	{ErrNoSuchAuction, "no_such_auction"},
	{ErrNoSuchBid, "no_such_bid"},
	{ErrHashMismatch, "hash_mismatch"},
	{ErrAlreadyRevealed, "already_revealed"},
	{ErrForfeited, "forfeited"},
	{ErrInsufficientEscrow, "insufficient_escrow"},
	{ErrNotWinner, "not_winner"},
	{ErrIsWinner, "is_winner"},
	{ErrNotResolved, "not_resolved"},
	{ErrAlreadyResolved, "already_resolved"},
	{ErrAlreadyDone, "already_done"},
	{ErrAlreadyRefunded, "already_refunded"},
	{storage.ErrInsufficientFunds, "insufficient_funds"},
}

// ErrorKind returns a stable label for err: "success" for nil, "internal" for
// anything that is not a registrar or ledger rejection.
func ErrorKind(err error) string {
	if err == nil {
		return "success"
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "internal"
}

// isRejection reports whether err is a settlement rejection raised before any
// value moved.
func isRejection(err error) bool {
	for _, target := range []error{ErrNotResolved, ErrNoSuchBid, ErrIsWinner, ErrNotWinner, ErrAlreadyRefunded, ErrForfeited} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// committedError marks a rejection whose state changes must still be committed.
type committedError struct {
	err error
}

func (e committedError) Error() string { return e.err.Error() }

func (e committedError) Unwrap() error { return e.err }

func keep(err error) error {
	return committedError{err: err}
}
