// Package registrar runs sealed-bid, second-price auctions for short top-level names.
package registrar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/internal/storage"
	"go.uber.org/zap"
)

// Registry owns every auction record and routes calls through the commit,
// reveal, resolve and settle steps. Each call is one storage transaction.
type Registry struct {
	store     Store
	clock     Clock
	scheduler *ReleaseScheduler
	cfg       Config
	metrics   Metrics
	events    EventPublisher
	logger    *zap.Logger
}

// NewRegistry builds a Registry. events may be nil.
func NewRegistry(
	store Store,
	clock Clock,
	cfg Config,
	metrics Metrics,
	events EventPublisher,
	logger *zap.Logger,
) (*Registry, error) {
	if store == nil {
		return nil, errors.New("registrar store is required")
	}
	if clock == nil {
		return nil, errors.New("registrar clock is required")
	}
	if metrics == nil {
		return nil, errors.New("registrar metrics is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("registrar config: %w", err)
	}
	if events == nil {
		events = noopPublisher{}
	}
	return &Registry{
		store:     store,
		clock:     clock,
		scheduler: NewReleaseScheduler(cfg.Launch, cfg.Week, cfg.WeekModulus),
		cfg:       cfg,
		metrics:   metrics,
		events:    events,
		logger:    logger,
	}, nil
}

// Scheduler exposes the release schedule.
func (r *Registry) Scheduler() *ReleaseScheduler {
	return r.scheduler
}

// Bid commits a sealed bid for name and escrows deposit from bidder.
func (r *Registry) Bid(ctx context.Context, name model.Name, bidder model.AccountID, hash model.CommitmentHash, deposit model.Amount) (err error) {
	started := time.Now()
	defer func() { r.metrics.Observe("bid", err, started) }()

	if err = ValidateName(name, r.cfg.MinNameLength); err != nil {
		return err
	}
	if bidder == "" {
		return ErrInvalidAccount
	}
	if deposit == 0 {
		return ErrInvalidAmount
	}

	opened := false
	err = r.update(ctx, name, func(t *txn) error {
		a, err := t.auctionOrNew()
		if err != nil {
			return err
		}
		if a.Status == model.StatusUnreleased && !r.scheduler.Released(name, t.now) {
			return ErrNotReleased
		}
		opened = a.Status == model.StatusUnreleased
		if err := commit(a, bidder, hash, deposit, t.now, r.cfg.BiddingWindow); err != nil {
			return err
		}
		if err := t.escrow(bidder, deposit); err != nil {
			return err
		}
		return t.tx.PutAuction(a)
	})
	if err != nil {
		return err
	}
	if opened {
		r.logger.Info("bidding opened", zap.String("name", string(name)), zap.String("bidder", string(bidder)))
	}
	r.logger.Debug("bid committed", zap.String("name", string(name)), zap.String("bidder", string(bidder)), zap.Uint64("deposit", uint64(deposit)))
	return nil
}

// Reveal opens bidder's commitment for name. A mismatching reveal is recorded
// and permanently forfeits the bid.
func (r *Registry) Reveal(ctx context.Context, name model.Name, bidder model.AccountID, amount model.Amount, mask []byte) (err error) {
	started := time.Now()
	defer func() { r.metrics.Observe("reveal", err, started) }()

	err = r.update(ctx, name, func(t *txn) error {
		a, err := t.auction()
		if err != nil {
			return err
		}
		err = reveal(a, bidder, amount, mask, t.now, r.cfg)
		if errors.Is(err, ErrHashMismatch) {
			t.event(model.EventRevealRejected, bidder, 0)
			if putErr := t.tx.PutAuction(a); putErr != nil {
				return putErr
			}
			return keep(err)
		}
		if err != nil {
			return err
		}
		t.event(model.EventReveal, bidder, amount)
		return t.tx.PutAuction(a)
	})
	if errors.Is(err, ErrHashMismatch) {
		r.logger.Warn("reveal rejected, bid forfeited", zap.String("name", string(name)), zap.String("bidder", string(bidder)))
	}
	return err
}

// Resolve ranks the reveals of name and fixes the winner and clearing price.
// With no reveals every escrow is forfeited and the name returns to unreleased.
func (r *Registry) Resolve(ctx context.Context, name model.Name) (out model.Outcome, err error) {
	started := time.Now()
	defer func() { r.metrics.Observe("resolve", err, started) }()

	err = r.update(ctx, name, func(t *txn) error {
		a, err := t.auction()
		if err != nil {
			return err
		}
		out, err = r.resolveIn(t, a)
		return err
	})
	if err != nil {
		return model.Outcome{}, err
	}
	r.logOutcome(out)
	return out, nil
}

// Claim settles name for its winner and binds publicKey to the new account.
// An auction whose reveal window is over is resolved first. Only a NotWinner
// rejection keeps that resolution; any other failure rolls the whole call back.
func (r *Registry) Claim(ctx context.Context, name model.Name, caller model.AccountID, publicKey []byte) (rec model.DoneRecord, err error) {
	started := time.Now()
	defer func() { r.metrics.Observe("claim", err, started) }()

	if len(publicKey) != publicKeySize {
		return model.DoneRecord{}, ErrInvalidPublicKey
	}

	err = r.update(ctx, name, func(t *txn) error {
		a, resolved, err := r.ensureResolved(t)
		if err != nil {
			return err
		}
		if a.Status != model.StatusResolved {
			return keep(ErrNotWinner)
		}
		rec, err = claim(t, a, caller, publicKey)
		if err != nil && resolved && errors.Is(err, ErrNotWinner) {
			return keep(err)
		}
		return err
	})
	if err != nil {
		return model.DoneRecord{}, err
	}
	r.logger.Info("name claimed",
		zap.String("name", string(name)),
		zap.String("owner", string(rec.Owner)),
		zap.Uint64("price", uint64(rec.PricePaid)),
	)
	return rec, nil
}

// Withdraw refunds a losing revealer's escrow. It is idempotent with the
// sweep performed by Claim: whichever runs first pays.
func (r *Registry) Withdraw(ctx context.Context, name model.Name, caller model.AccountID) (amount model.Amount, err error) {
	started := time.Now()
	defer func() { r.metrics.Observe("withdraw", err, started) }()

	err = r.update(ctx, name, func(t *txn) error {
		a, resolved, err := r.ensureResolved(t)
		if err != nil {
			return err
		}
		if a.Status != model.StatusResolved {
			if _, ok := a.Bids[caller]; !ok {
				return keep(ErrNoSuchBid)
			}
			return keep(ErrForfeited)
		}
		amount, err = withdraw(t, a, caller)
		if err != nil {
			if resolved && isRejection(err) {
				return keep(err)
			}
			return err
		}
		return t.tx.PutAuction(a)
	})
	if err != nil {
		return 0, err
	}
	r.logger.Debug("escrow withdrawn", zap.String("name", string(name)), zap.String("bidder", string(caller)), zap.Uint64("amount", uint64(amount)))
	return amount, nil
}

// PendingResolution lists the names that can be resolved right now.
func (r *Registry) PendingResolution(ctx context.Context) ([]model.Name, error) {
	now := r.clock.Now()
	var names []model.Name
	err := r.store.View(ctx, func(tx storage.Tx) error {
		return tx.ForEachAuction(func(a *model.Auction) error {
			if resolvable(a, now, r.cfg) == nil {
				names = append(names, a.Name)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("scan auctions: %w", err)
	}
	return names, nil
}

// Credit adds amount to account. Only exposed to operators.
func (r *Registry) Credit(ctx context.Context, account model.AccountID, amount model.Amount) (err error) {
	started := time.Now()
	defer func() { r.metrics.Observe("credit", err, started) }()

	if account == "" {
		return ErrInvalidAccount
	}
	if amount == 0 {
		return ErrInvalidAmount
	}
	return r.store.Update(ctx, func(tx storage.Tx) error {
		return tx.Credit(account, amount)
	})
}

// Balance returns the ledger balance of account.
func (r *Registry) Balance(ctx context.Context, account model.AccountID) (model.Amount, error) {
	var balance model.Amount
	err := r.store.View(ctx, func(tx storage.Tx) error {
		var err error
		balance, err = tx.Balance(account)
		return err
	})
	return balance, err
}

// Totals returns the value held in custody and the value burned so far.
func (r *Registry) Totals(ctx context.Context) (storage.Totals, error) {
	var totals storage.Totals
	err := r.store.View(ctx, func(tx storage.Tx) error {
		var err error
		totals, err = tx.Totals()
		return err
	})
	return totals, err
}

// ensureResolved returns the auction for the call's name, resolving it first
// when allowed; the bool reports that resolution happened in this call. An
// auction that comes back without StatusResolved was reset for lack of reveals
// and its record is already deleted.
func (r *Registry) ensureResolved(t *txn) (*model.Auction, bool, error) {
	a, err := t.auction()
	if err != nil {
		return nil, false, err
	}
	if a.Status == model.StatusResolved {
		return a, false, nil
	}
	out, err := r.resolveIn(t, a)
	if errors.Is(err, ErrNotOpen) || errors.Is(err, ErrNoSuchAuction) {
		return nil, false, ErrNotResolved
	}
	if err != nil {
		return nil, false, err
	}
	r.logOutcome(out)
	return a, true, nil
}

func (r *Registry) resolveIn(t *txn, a *model.Auction) (model.Outcome, error) {
	out, err := resolve(a, t.now, r.cfg)
	if err != nil {
		return out, err
	}
	if out.Reset {
		if err := forfeitAll(t, a); err != nil {
			return out, err
		}
		t.event(model.EventReset, "", 0)
		return out, t.tx.DeleteAuction(a.Name)
	}
	t.event(model.EventResolved, out.Winner, out.ClearingPrice)
	return out, t.tx.PutAuction(a)
}

// update runs fn in one storage transaction, then reports the value it moved
// and publishes its events. Errors wrapped with keep are returned after commit.
func (r *Registry) update(ctx context.Context, name model.Name, fn func(t *txn) error) error {
	var (
		t         *txn
		committed error
	)
	err := r.store.Update(ctx, func(tx storage.Tx) error {
		t = &txn{tx: tx, name: name, now: r.clock.Now()}
		err := fn(t)
		var c committedError
		if errors.As(err, &c) {
			committed = c.err
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	if t.escrowed > 0 || t.refunded > 0 || t.burned > 0 {
		r.metrics.ObserveAmounts(t.escrowed, t.refunded, t.burned)
	}
	if len(t.events) > 0 {
		r.events.Publish(ctx, t.events)
	}
	return committed
}

func (r *Registry) logOutcome(out model.Outcome) {
	if out.Reset {
		r.logger.Info("auction reset, no reveals", zap.String("name", string(out.Name)))
		return
	}
	r.logger.Info("auction resolved",
		zap.String("name", string(out.Name)),
		zap.String("winner", string(out.Winner)),
		zap.Uint64("clearing_price", uint64(out.ClearingPrice)),
		zap.Int("reveals", out.Reveals),
	)
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, []model.Event) {}
