package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweeperScanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sweeper",
		Name:      "scan_total",
		Help:      "Count of scans for auctions awaiting resolution.",
	}, []string{"status"})

	sweeperScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sweeper",
		Name:      "scan_duration_seconds",
		Help:      "Duration of scanning for auctions awaiting resolution.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	sweeperPending = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sweeper",
		Name:      "pending_auctions",
		Help:      "Number of auctions found awaiting resolution per scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	})

	sweeperResolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sweeper",
		Name:      "resolve_total",
		Help:      "Count of auctions resolved by the sweeper.",
	}, []string{"status"})
)

// Sweeper tracks metrics for the background resolution loop.
type Sweeper struct{}

// NewSweeper creates a Sweeper metrics collector.
func NewSweeper() *Sweeper {
	return &Sweeper{}
}

// ObserveScan records a scan outcome, its duration and how many auctions it found.
func (m Sweeper) ObserveScan(err error, pending int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	sweeperScanTotal.WithLabelValues(status).Inc()
	sweeperScanDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		sweeperPending.Observe(float64(pending))
	}
}

func (m Sweeper) ObserveResolve(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	sweeperResolveTotal.WithLabelValues(status).Inc()
}
