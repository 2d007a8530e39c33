// Package storage defines the transactional ledger contract the registrar runs against.
package storage

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientFunds is returned when an account cannot cover a debit.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrCustodyShortfall is returned when the registrar custody cannot cover a release.
	ErrCustodyShortfall = errors.New("custody shortfall")
	// ErrAccountExists is returned when an account binding already exists for a name.
	ErrAccountExists = errors.New("account already exists")
)

// Store executes calls as serialized transactions. Update commits only when fn returns nil.
type Store interface {
	Update(ctx context.Context, fn func(tx Tx) error) error
	View(ctx context.Context, fn func(tx Tx) error) error
}

// Totals summarizes registrar-held value.
type Totals struct {
	Custody model.Amount `json:"custody"`
	Burned  model.Amount `json:"burned"`
}

// Tx is a single atomic unit of work against auction records and balances.
type Tx interface {
	Auction(name model.Name) (*model.Auction, error)
	PutAuction(a *model.Auction) error
	DeleteAuction(name model.Name) error
	ForEachAuction(fn func(a *model.Auction) error) error

	DoneRecord(name model.Name) (*model.DoneRecord, error)
	PutDoneRecord(rec model.DoneRecord) error

	Balance(account model.AccountID) (model.Amount, error)
	Credit(account model.AccountID, amount model.Amount) error
	// Escrow moves amount from account into registrar custody.
	Escrow(from model.AccountID, amount model.Amount) error
	// Refund moves amount from registrar custody back to account.
	Refund(to model.AccountID, amount model.Amount) error
	// Burn destroys amount held in registrar custody.
	Burn(amount model.Amount) error
	Totals() (Totals, error)

	CreateAccount(binding model.AccountBinding) error
	Account(name model.Name) (*model.AccountBinding, error)
}
