package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/internal/registrar"
	"github.com/goodnatureofminers/tla-registrar/internal/storage"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Registrar interface {
		Bid(ctx context.Context, name model.Name, bidder model.AccountID, hash model.CommitmentHash, deposit model.Amount) error
		Reveal(ctx context.Context, name model.Name, bidder model.AccountID, amount model.Amount, mask []byte) error
		Resolve(ctx context.Context, name model.Name) (model.Outcome, error)
		Claim(ctx context.Context, name model.Name, caller model.AccountID, publicKey []byte) (model.DoneRecord, error)
		Withdraw(ctx context.Context, name model.Name, caller model.AccountID) (model.Amount, error)
		Status(ctx context.Context, name model.Name) (registrar.AuctionStatus, error)
		PendingResolution(ctx context.Context) ([]model.Name, error)
		Credit(ctx context.Context, account model.AccountID, amount model.Amount) error
		Balance(ctx context.Context, account model.AccountID) (model.Amount, error)
		Totals(ctx context.Context) (storage.Totals, error)
	}
	History interface {
		EventsByName(ctx context.Context, name model.Name, limit uint64) ([]model.Event, error)
		EventsByAccount(ctx context.Context, account model.AccountID, limit uint64) ([]model.Event, error)
	}
	Metrics interface {
		Observe(method, route string, code int, started time.Time)
	}
)
