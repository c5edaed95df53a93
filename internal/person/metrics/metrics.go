package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the person resolution pipeline.
type Metrics struct {
	Resolutions         *prometheus.CounterVec
	EnrichmentFallbacks prometheus.Counter
	CircuitOpened       prometheus.Counter
	UpstreamLatency     *prometheus.HistogramVec
	PropertyReads       *prometheus.CounterVec
	ResolveLatency      prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		Resolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "personlink_resolutions_total",
			Help: "Total number of resolution attempts, labeled by outcome",
		}, []string{"outcome"}),
		EnrichmentFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "personlink_enrichment_fallbacks_total",
			Help: "Total number of resolutions that fell back to the raw search candidate",
		}),
		CircuitOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "personlink_query_circuit_opened_total",
			Help: "Total number of times the structured-query circuit breaker opened",
		}),
		UpstreamLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "personlink_upstream_latency_seconds",
			Help:    "Latency of upstream calls in seconds, labeled by capability",
			Buckets: prometheus.DefBuckets,
		}, []string{"capability"}),
		PropertyReads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "personlink_property_reads_total",
			Help: "Total number of property reads, labeled by property and outcome",
		}, []string{"property", "outcome"}),
		ResolveLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "personlink_resolve_latency_seconds",
			Help:    "End-to-end latency of name resolution in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// IncrementResolution records a resolution attempt with its outcome
// (resolved, not_found, fallback, error).
func (m *Metrics) IncrementResolution(outcome string) {
	m.Resolutions.WithLabelValues(outcome).Inc()
}

// IncrementEnrichmentFallback records a resolution served from the raw
// search candidate because enrichment produced nothing.
func (m *Metrics) IncrementEnrichmentFallback() {
	m.EnrichmentFallbacks.Inc()
}

// IncrementCircuitOpened records a circuit breaker transition to open.
func (m *Metrics) IncrementCircuitOpened() {
	m.CircuitOpened.Inc()
}

// ObserveUpstreamLatency records the latency of one upstream call.
func (m *Metrics) ObserveUpstreamLatency(capability string, d time.Duration) {
	m.UpstreamLatency.WithLabelValues(capability).Observe(d.Seconds())
}

// IncrementPropertyRead records a property read attempt with its outcome (ok, error).
func (m *Metrics) IncrementPropertyRead(property, outcome string) {
	m.PropertyReads.WithLabelValues(property, outcome).Inc()
}

// ObserveResolveLatency records the end-to-end resolution latency.
func (m *Metrics) ObserveResolveLatency(d time.Duration) {
	m.ResolveLatency.Observe(d.Seconds())
}
