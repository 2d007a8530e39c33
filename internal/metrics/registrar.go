// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/internal/registrar"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tlaregistrar"

var (
	registrarOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "registry",
		Name:      "operations_total",
		Help:      "Count of registrar operations by outcome.",
	}, []string{"operation", "result"})

	registrarOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "registry",
		Name:      "operation_duration_seconds",
		Help:      "Duration of registrar operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "status"})

	registrarValueTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "registry",
		Name:      "value_total",
		Help:      "Value moved by the registrar, by movement.",
	}, []string{"movement"})
)

// Registrar tracks registrar operations and the value they move.
type Registrar struct{}

// NewRegistrar creates a Registrar metrics collector.
func NewRegistrar() *Registrar {
	return &Registrar{}
}

// Observe records the outcome and duration of a registrar operation. Rejections
// are counted under their error kind.
func (m Registrar) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	registrarOperationsTotal.WithLabelValues(operation, registrar.ErrorKind(err)).Inc()
	registrarOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveAmounts records value escrowed, refunded and burned by one call.
func (m Registrar) ObserveAmounts(escrowed, refunded, burned model.Amount) {
	registrarValueTotal.WithLabelValues("escrowed").Add(float64(escrowed))
	registrarValueTotal.WithLabelValues("refunded").Add(float64(refunded))
	registrarValueTotal.WithLabelValues("burned").Add(float64(burned))
}
