package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventWriterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "event_writer",
		Name:      "flush_total",
		Help:      "Count of event batches flushed to the history store.",
	}, []string{"status"})

	eventWriterFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "event_writer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of flushing an event batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	eventWriterFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "event_writer",
		Name:      "flush_size",
		Help:      "Number of events per flushed batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	eventWriterDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "event_writer",
		Name:      "dropped_total",
		Help:      "Count of events that could not be queued.",
	})
)

// EventWriter tracks metrics for the auction event writer.
type EventWriter struct{}

// NewEventWriter creates an EventWriter metrics collector.
func NewEventWriter() *EventWriter {
	return &EventWriter{}
}

// ObserveFlush records a flushed batch.
func (m EventWriter) ObserveFlush(err error, size int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	eventWriterFlushTotal.WithLabelValues(status).Inc()
	eventWriterFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	eventWriterFlushSize.Observe(float64(size))
}

// ObserveDropped counts events lost before reaching the batcher.
func (m EventWriter) ObserveDropped(n int) {
	eventWriterDroppedTotal.Add(float64(n))
}
