package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventRepositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "event_repository",
		Name:      "operations_total",
		Help:      "Event history operations by result.",
	}, []string{"operation", "result"})
	eventRepositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "event_repository",
		Name:      "operation_duration_seconds",
		Help:      "Latency of event history operations.",
		Buckets:   prometheus.ExponentialBuckets(0.002, 2, 14),
	}, []string{"operation"})
)

// EventRepository observes the ClickHouse event history.
type EventRepository struct{}

// NewEventRepository returns an EventRepository collector.
func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

// Observe records one repository call. Timeouts and cancellations are counted
// apart from server errors.
func (EventRepository) Observe(operation string, err error, started time.Time) {
	eventRepositoryOperationsTotal.WithLabelValues(operation, repositoryResult(err)).Inc()
	eventRepositoryOperationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func repositoryResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}
