package registrar

import (
	"fmt"
	"slices"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/pkg/safe"
)

// claim settles a resolved auction for its winner: the clearing price is burned,
// the winner gets the rest of their escrow back, honest revealers are refunded
// in full and everyone else forfeits. The auction record is replaced by a DoneRecord.
func claim(t *txn, a *model.Auction, caller model.AccountID, publicKey []byte) (model.DoneRecord, error) {
	if a.Status != model.StatusResolved {
		return model.DoneRecord{}, ErrNotResolved
	}
	if caller != a.Winner {
		return model.DoneRecord{}, ErrNotWinner
	}

	winning, ok := a.Bids[a.Winner]
	if !ok {
		return model.DoneRecord{}, fmt.Errorf("winner %s has no commitment", a.Winner)
	}
	if winning.Settled {
		return model.DoneRecord{}, fmt.Errorf("winner %s escrow already settled: %w", a.Winner, ErrAlreadyDone)
	}
	change, err := safe.Sub(winning.Escrowed, a.ClearingPrice)
	if err != nil {
		return model.DoneRecord{}, fmt.Errorf("winner change: %w", err)
	}
	if err := t.burn(model.EventBurn, a.Winner, a.ClearingPrice); err != nil {
		return model.DoneRecord{}, err
	}
	if err := t.refund(a.Winner, change); err != nil {
		return model.DoneRecord{}, err
	}
	winning.Settled = true

	for _, bidder := range sortedBidders(a) {
		if bidder == a.Winner {
			continue
		}
		if err := settleLoser(t, a, bidder); err != nil {
			return model.DoneRecord{}, err
		}
	}

	if err := t.tx.CreateAccount(model.AccountBinding{
		Name:      a.Name,
		Owner:     a.Winner,
		PublicKey: publicKey,
		CreatedAt: t.now,
	}); err != nil {
		return model.DoneRecord{}, fmt.Errorf("create account: %w", err)
	}

	rec := model.DoneRecord{
		Name:      a.Name,
		Owner:     a.Winner,
		PricePaid: a.ClearingPrice,
		PublicKey: encodeKey(publicKey),
		ClaimedAt: t.now,
	}
	if err := t.tx.PutDoneRecord(rec); err != nil {
		return model.DoneRecord{}, err
	}
	if err := t.tx.DeleteAuction(a.Name); err != nil {
		return model.DoneRecord{}, err
	}
	a.Status = model.StatusDone
	t.event(model.EventClaim, a.Winner, a.ClearingPrice)
	return rec, nil
}

// withdraw refunds a losing revealer ahead of the winner's claim.
func withdraw(t *txn, a *model.Auction, caller model.AccountID) (model.Amount, error) {
	if a.Status != model.StatusResolved {
		return 0, ErrNotResolved
	}
	bid, ok := a.Bids[caller]
	if !ok {
		return 0, ErrNoSuchBid
	}
	if caller == a.Winner {
		return 0, ErrIsWinner
	}
	if bid.Settled {
		return 0, ErrAlreadyRefunded
	}
	if _, revealed := a.Reveals[caller]; !revealed {
		return 0, ErrForfeited
	}
	if err := t.refund(caller, bid.Escrowed); err != nil {
		return 0, err
	}
	bid.Settled = true
	return bid.Escrowed, nil
}

// forfeitAll burns every unsettled escrow of an auction nobody revealed for.
func forfeitAll(t *txn, a *model.Auction) error {
	for _, bidder := range sortedBidders(a) {
		bid := a.Bids[bidder]
		if bid.Settled {
			continue
		}
		if err := t.burn(model.EventForfeit, bidder, bid.Escrowed); err != nil {
			return err
		}
		bid.Settled = true
	}
	return nil
}

func settleLoser(t *txn, a *model.Auction, bidder model.AccountID) error {
	bid := a.Bids[bidder]
	if bid.Settled {
		return nil
	}
	var err error
	if _, revealed := a.Reveals[bidder]; revealed {
		err = t.refund(bidder, bid.Escrowed)
	} else {
		err = t.burn(model.EventForfeit, bidder, bid.Escrowed)
	}
	if err != nil {
		return err
	}
	bid.Settled = true
	return nil
}

func sortedBidders(a *model.Auction) []model.AccountID {
	bidders := make([]model.AccountID, 0, len(a.Bids))
	for bidder := range a.Bids {
		bidders = append(bidders, bidder)
	}
	slices.Sort(bidders)
	return bidders
}
