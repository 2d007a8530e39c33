package registrar

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/internal/storage"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		Update(ctx context.Context, fn func(tx storage.Tx) error) error
		View(ctx context.Context, fn func(tx storage.Tx) error) error
	}
	Clock interface {
		Now() time.Time
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveAmounts(escrowed, refunded, burned model.Amount)
	}
	EventPublisher interface {
		Publish(ctx context.Context, events []model.Event)
	}
)
