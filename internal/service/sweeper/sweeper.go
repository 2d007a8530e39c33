// Package sweeper resolves auctions whose reveal phase is over without waiting
// for a claim or withdraw to do it.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/clock"
	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/internal/registrar"
	"github.com/goodnatureofminers/tla-registrar/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultWorkerCount = 4
	defaultInterval    = time.Minute
)

type Service struct {
	registry    Registry
	metrics     Metrics
	logger      *zap.Logger
	sleep       func(context.Context, time.Duration) error
	interval    time.Duration
	workerCount int
}

func NewService(registry Registry, metrics Metrics, interval time.Duration, logger *zap.Logger) (*Service, error) {
	if registry == nil {
		return nil, errors.New("sweeper registry is required")
	}
	if metrics == nil {
		return nil, errors.New("sweeper metrics is required")
	}
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Service{
		registry:    registry,
		metrics:     metrics,
		logger:      logger,
		sleep:       clock.Sleep,
		interval:    interval,
		workerCount: defaultWorkerCount,
	}, nil
}

// Run sweeps every interval until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("sweep failed", zap.Error(err), zap.Duration("sleep", s.interval))
		}
		if err := s.sleep(ctx, s.interval); err != nil {
			return err
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	names, err := s.registry.PendingResolution(ctx)
	s.metrics.ObserveScan(err, len(names), started)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}

	s.logger.Info("resolving auctions", zap.Int("count", len(names)))
	return workerpool.ProcessAll(ctx, s.workerCount, names, s.resolve)
}

func (s *Service) resolve(ctx context.Context, name model.Name) error {
	out, err := s.registry.Resolve(ctx, name)
	s.metrics.ObserveResolve(err)
	switch {
	case err == nil:
	case errors.Is(err, registrar.ErrAlreadyResolved),
		errors.Is(err, registrar.ErrAlreadyDone),
		errors.Is(err, registrar.ErrNoSuchAuction),
		errors.Is(err, registrar.ErrNotOpen):
		// settled by a concurrent call since the scan
		s.logger.Debug("auction no longer pending", zap.String("name", string(name)), zap.Error(err))
		return nil
	default:
		return fmt.Errorf("resolve %s: %w", name, err)
	}

	if out.Reset {
		s.logger.Info("swept auction reset", zap.String("name", string(name)))
		return nil
	}
	s.logger.Info("swept auction resolved",
		zap.String("name", string(name)),
		zap.String("winner", string(out.Winner)),
		zap.Uint64("clearing_price", uint64(out.ClearingPrice)),
	)
	return nil
}
