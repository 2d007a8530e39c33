package events

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertEvents(ctx context.Context, events []model.Event) error
	}
	Metrics interface {
		ObserveFlush(err error, size int, started time.Time)
		ObserveDropped(n int)
	}
)
