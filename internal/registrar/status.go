package registrar

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/internal/storage"
)

// AuctionStatus is the public view of a name. Bid amounts are never exposed
// before the auction resolves.
type AuctionStatus struct {
	Name          model.Name        `json:"name"`
	Status        model.Status      `json:"status"`
	WeekIndex     uint64            `json:"week_index"`
	ReleaseAt     time.Time         `json:"release_at"`
	Released      bool              `json:"released"`
	BiddingStart  *time.Time        `json:"bidding_start,omitempty"`
	RevealStart   *time.Time        `json:"reveal_start,omitempty"`
	RevealEnd     *time.Time        `json:"reveal_end,omitempty"`
	Bidders       int               `json:"bidders"`
	Reveals       int               `json:"reveals"`
	Forfeited     int               `json:"forfeited"`
	Resolvable    bool              `json:"resolvable"`
	Winner        model.AccountID   `json:"winner,omitempty"`
	ClearingPrice model.Amount      `json:"clearing_price,omitempty"`
	Done          *model.DoneRecord `json:"done,omitempty"`
}

// Status returns the current view of name.
func (r *Registry) Status(ctx context.Context, name model.Name) (st AuctionStatus, err error) {
	started := time.Now()
	defer func() { r.metrics.Observe("status", err, started) }()

	if err = ValidateName(name, r.cfg.MinNameLength); err != nil {
		return AuctionStatus{}, err
	}

	now := r.clock.Now()
	st = AuctionStatus{
		Name:      name,
		Status:    model.StatusUnreleased,
		WeekIndex: r.scheduler.WeekIndex(name),
		ReleaseAt: r.scheduler.ReleaseTime(name),
		Released:  r.scheduler.Released(name, now),
	}

	err = r.store.View(ctx, func(tx storage.Tx) error {
		rec, err := tx.DoneRecord(name)
		if err == nil {
			st.Status = model.StatusDone
			st.Done = rec
			return nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		a, err := tx.Auction(name)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		fillAuctionStatus(&st, a, now, r.cfg)
		return nil
	})
	if err != nil {
		return AuctionStatus{}, err
	}
	return st, nil
}

func fillAuctionStatus(st *AuctionStatus, a *model.Auction, now time.Time, cfg Config) {
	st.Status = a.Phase(now, cfg.BiddingWindow)
	biddingStart := a.BiddingStart
	revealStart := a.RevealStart(cfg.BiddingWindow)
	revealEnd := a.RevealEnd(cfg.BiddingWindow, cfg.RevealWindow)
	st.BiddingStart = &biddingStart
	st.RevealStart = &revealStart
	st.RevealEnd = &revealEnd
	st.Bidders = len(a.Bids)
	st.Reveals = len(a.Reveals)
	for _, bid := range a.Bids {
		if bid.Forfeited {
			st.Forfeited++
		}
	}
	st.Resolvable = resolvable(a, now, cfg) == nil
	if a.Status == model.StatusResolved {
		st.Winner = a.Winner
		st.ClearingPrice = a.ClearingPrice
	}
}
