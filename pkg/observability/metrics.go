package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service-level Prometheus counters.
type Metrics struct {
	SchedulesGenerated prometheus.Counter
	SuggestionsServed  *prometheus.CounterVec
	FeesQuoted         prometheus.Counter
}

// NewMetrics registers and returns the service counters on the default
// Prometheus registry.
func NewMetrics(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		SchedulesGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "repayment_schedules_generated_total",
			Help:        "Number of amortization schedules generated.",
			ConstLabels: labels,
		}),
		SuggestionsServed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "repayment_suggestions_served_total",
			Help:        "Number of repayment suggestions served, by source.",
			ConstLabels: labels,
		}, []string{"source"}),
		FeesQuoted: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "repayment_fees_quoted_total",
			Help:        "Number of platform fee quotes computed.",
			ConstLabels: labels,
		}),
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
