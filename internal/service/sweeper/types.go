package sweeper

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Registry interface {
		PendingResolution(ctx context.Context) ([]model.Name, error)
		Resolve(ctx context.Context, name model.Name) (model.Outcome, error)
	}
	Metrics interface {
		ObserveScan(err error, pending int, started time.Time)
		ObserveResolve(err error)
	}
)
