// Package events moves registrar events into the history store in batches.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultFlushSize     = 500
	defaultFlushInterval = 2 * time.Second
	defaultFlushRPS      = 10
)

// Writer implements registrar.EventPublisher on top of a batcher. Publish
// never blocks: when the queue is full events are dropped and counted.
type Writer struct {
	repo    Repository
	metrics Metrics
	logger  *zap.Logger
	batcher *batcher.Batcher[model.Event]
}

func NewWriter(repo Repository, metrics Metrics, logger *zap.Logger) (*Writer, error) {
	if repo == nil {
		return nil, errors.New("event repository is required")
	}
	if metrics == nil {
		return nil, errors.New("event writer metrics is required")
	}

	w := &Writer{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
	w.batcher = batcher.New[model.Event](
		logger.Named("eventBatcher"),
		w.flush,
		defaultFlushSize,
		defaultFlushInterval,
		defaultFlushRPS,
	)
	return w, nil
}

// Start begins flushing queued events in the background.
func (w *Writer) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes queued events and stops the writer.
func (w *Writer) Stop() {
	w.batcher.Stop()
}

// Publish queues events without blocking. Events that do not fit in a full
// queue are dropped and counted.
func (w *Writer) Publish(_ context.Context, events []model.Event) {
	for i, e := range events {
		if !w.batcher.TryAdd(e) {
			dropped := len(events) - i
			w.metrics.ObserveDropped(dropped)
			w.logger.Warn("event queue full, dropping events",
				zap.String("name", string(e.Name)),
				zap.Int("dropped", dropped),
			)
			return
		}
	}
}

func (w *Writer) flush(ctx context.Context, events []model.Event) (err error) {
	started := time.Now()
	defer func() {
		w.metrics.ObserveFlush(err, len(events), started)
	}()

	return w.repo.InsertEvents(ctx, events)
}
