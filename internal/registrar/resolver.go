package registrar

import (
	"cmp"
	"slices"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
)

// rankReveals orders reveals by amount descending; equal amounts go to the earliest revealer.
func rankReveals(reveals map[model.AccountID]*model.RevealedBid) []*model.RevealedBid {
	ranked := make([]*model.RevealedBid, 0, len(reveals))
	for _, r := range reveals {
		ranked = append(ranked, r)
	}
	slices.SortFunc(ranked, func(x, y *model.RevealedBid) int {
		if c := cmp.Compare(y.Amount, x.Amount); c != 0 {
			return c
		}
		if c := x.RevealedAt.Compare(y.RevealedAt); c != 0 {
			return c
		}
		return cmp.Compare(x.Seq, y.Seq)
	})
	return ranked
}

// resolvable reports why a cannot be resolved at now, if it cannot.
func resolvable(a *model.Auction, now time.Time, cfg Config) error {
	switch a.Phase(now, cfg.BiddingWindow) {
	case model.StatusUnreleased:
		return ErrNoSuchAuction
	case model.StatusBidding:
		return ErrNotOpen
	case model.StatusResolved:
		return ErrAlreadyResolved
	case model.StatusDone:
		return ErrAlreadyDone
	}
	if now.Before(a.RevealEnd(cfg.BiddingWindow, cfg.RevealWindow)) && !a.AllRevealed() {
		return ErrNotOpen
	}
	return nil
}

// resolve picks the winner and the clearing price. With no reveals the outcome
// is a reset and a is left untouched for the caller to forfeit and delete.
func resolve(a *model.Auction, now time.Time, cfg Config) (model.Outcome, error) {
	if err := resolvable(a, now, cfg); err != nil {
		return model.Outcome{}, err
	}

	ranked := rankReveals(a.Reveals)
	out := model.Outcome{Name: a.Name, Reveals: len(ranked)}
	switch len(ranked) {
	case 0:
		out.Reset = true
		return out, nil
	case 1:
		out.Winner = ranked[0].Bidder
		out.ClearingPrice = ranked[0].Amount
	default:
		out.Winner = ranked[0].Bidder
		out.ClearingPrice = ranked[1].Amount
	}

	a.Status = model.StatusResolved
	a.Winner = out.Winner
	a.ClearingPrice = out.ClearingPrice
	return out, nil
}
