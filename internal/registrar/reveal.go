package registrar

import (
	"bytes"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
)

// reveal opens bidder's commitment. On ErrHashMismatch the commitment is marked
// forfeited and the caller must persist a.
func reveal(a *model.Auction, bidder model.AccountID, amount model.Amount, mask []byte, now time.Time, cfg Config) error {
	switch a.Phase(now, cfg.BiddingWindow) {
	case model.StatusBidding:
		return ErrNotOpen
	case model.StatusReveal:
		if !now.Before(a.RevealEnd(cfg.BiddingWindow, cfg.RevealWindow)) {
			return ErrWindowExpired
		}
	case model.StatusUnreleased:
		return ErrNoSuchAuction
	default:
		return ErrWindowExpired
	}

	bid, ok := a.Bids[bidder]
	if !ok {
		return ErrNoSuchBid
	}
	if bid.Forfeited {
		return ErrForfeited
	}
	if _, ok := a.Reveals[bidder]; ok {
		return ErrAlreadyRevealed
	}

	a.Status = model.StatusReveal
	hash := HashBid(amount, mask, bidder)
	if !bytes.Equal(hash[:], bid.Hash[:]) {
		bid.Forfeited = true
		return ErrHashMismatch
	}
	if amount > bid.Escrowed {
		return ErrInsufficientEscrow
	}

	a.RevealSeq++
	a.Reveals[bidder] = &model.RevealedBid{
		Bidder:     bidder,
		Amount:     amount,
		Mask:       append([]byte(nil), mask...),
		RevealedAt: now,
		Seq:        a.RevealSeq,
	}
	return nil
}
