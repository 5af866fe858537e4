package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// collector.
type Metrics struct {
	PollCycles            prometheus.Counter
	ObservationsPublished prometheus.Counter
	PublishErrors         prometheus.Counter
	CollectorRunning      prometheus.Gauge

	// Aeris API metrics.
	APIRequests        *prometheus.CounterVec   // labels: action, outcome={success,api_error,error}
	APIRequestDuration *prometheus.HistogramVec // labels: action
}

// NewMetrics creates and registers all collector metrics with the
// default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		PollCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aeris_collector",
			Name:      "poll_cycles_total",
			Help:      "Total completed polling cycles.",
		}),
		ObservationsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aeris_collector",
			Name:      "observations_published_total",
			Help:      "Total air quality observations written to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aeris_collector",
			Name:      "publish_errors_total",
			Help:      "Total failed Kafka publishes.",
		}),
		CollectorRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aeris_collector",
			Name:      "running",
			Help:      "1 when the collector loop is active, 0 when shut down.",
		}),
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aeris_collector",
			Name:      "api_requests_total",
			Help:      "Aeris API requests by action and outcome.",
		}, []string{"action", "outcome"}),
		APIRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aeris_collector",
			Name:      "api_request_duration_seconds",
			Help:      "Aeris API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"action"}),
	}

	prometheus.MustRegister(
		m.PollCycles,
		m.ObservationsPublished,
		m.PublishErrors,
		m.CollectorRunning,
		m.APIRequests,
		m.APIRequestDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		PollCycles:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "aeris_collector", Name: "poll_cycles_total"}),
		ObservationsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "aeris_collector", Name: "observations_published_total"}),
		PublishErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "aeris_collector", Name: "publish_errors_total"}),
		CollectorRunning:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "aeris_collector", Name: "running"}),
		APIRequests:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "aeris_collector", Name: "api_requests_total"}, []string{"action", "outcome"}),
		APIRequestDuration:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "aeris_collector", Name: "api_request_duration_seconds"}, []string{"action"}),
	}
}
