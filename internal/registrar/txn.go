package registrar

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/internal/storage"
)

// txn is the state of a single registrar call: the storage transaction, the
// call's timestamp, and the value movements and events it produced.
type txn struct {
	tx       storage.Tx
	name     model.Name
	now      time.Time
	events   []model.Event
	escrowed model.Amount
	refunded model.Amount
	burned   model.Amount
}

func (t *txn) event(kind model.EventKind, account model.AccountID, amount model.Amount) {
	t.events = append(t.events, model.Event{
		Name:    t.name,
		Kind:    kind,
		Account: account,
		Amount:  amount,
		At:      t.now,
	})
}

// auction loads the live auction for the call's name.
func (t *txn) auction() (*model.Auction, error) {
	a, err := t.tx.Auction(t.name)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if _, doneErr := t.tx.DoneRecord(t.name); doneErr == nil {
		return nil, ErrAlreadyDone
	} else if !errors.Is(doneErr, storage.ErrNotFound) {
		return nil, doneErr
	}
	return nil, ErrNoSuchAuction
}

// auctionOrNew is auction, except a missing record yields a fresh unreleased one.
func (t *txn) auctionOrNew() (*model.Auction, error) {
	a, err := t.auction()
	if errors.Is(err, ErrNoSuchAuction) {
		return model.NewAuction(t.name), nil
	}
	return a, err
}

func (t *txn) escrow(from model.AccountID, amount model.Amount) error {
	if err := t.tx.Escrow(from, amount); err != nil {
		return err
	}
	t.escrowed += amount
	t.event(model.EventBid, from, amount)
	return nil
}

func (t *txn) refund(to model.AccountID, amount model.Amount) error {
	if amount == 0 {
		return nil
	}
	if err := t.tx.Refund(to, amount); err != nil {
		return err
	}
	t.refunded += amount
	t.event(model.EventRefund, to, amount)
	return nil
}

func (t *txn) burn(kind model.EventKind, account model.AccountID, amount model.Amount) error {
	if amount == 0 {
		return nil
	}
	if err := t.tx.Burn(amount); err != nil {
		return err
	}
	t.burned += amount
	t.event(kind, account, amount)
	return nil
}
