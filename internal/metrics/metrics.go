// Package metrics exposes Prometheus instruments for the dashboard.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Action outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
)

// Metrics holds the dashboard collectors. A nil *Metrics records nothing.
type Metrics struct {
	actions      *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers the dashboard collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		actions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_actions_total",
				Help: "Server actions by name and outcome",
			},
			[]string{"action", "outcome"},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_page_cache_lookups_total",
				Help: "Page cache lookups by result",
			},
			[]string{"result"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "code"},
		),
	}
}

// ObserveAction counts one run of action with the given outcome.
func (m *Metrics) ObserveAction(action, outcome string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(action, outcome).Inc()
}

// ObserveCacheLookup counts a page cache hit or miss.
func (m *Metrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ObserveHTTP records the latency of one request.
func (m *Metrics) ObserveHTTP(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(d.Seconds())
}
