// Package metrics exposes Prometheus instrumentation for the search engine:
// search counts and latency, cache hit rates, and radius expansion counts.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search status label values.
const (
	StatusSuccess = "success"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

// Cache result label values.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Recorder holds the Prometheus collectors for the search engine.
// All methods are safe on a nil receiver so callers can run unmetered.
type Recorder struct {
	registry *prometheus.Registry

	searches       *prometheus.CounterVec
	searchDuration prometheus.Histogram
	cacheRequests  *prometheus.CounterVec
	expansions     prometheus.Counter
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "business_search_requests_total",
			Help: "Total search requests by outcome status.",
		}, []string{"status"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "business_search_duration_seconds",
			Help:    "Search processing time in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "business_search_cache_requests_total",
			Help: "Response cache lookups by result.",
		}, []string{"result"}),
		expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "business_search_radius_expansions_total",
			Help: "Searches that walked the radius expansion sequence.",
		}),
	}

	registry.MustRegister(r.searches, r.searchDuration, r.cacheRequests, r.expansions)
	return r
}

// ObserveSearch records one completed search with its outcome status and
// duration in seconds.
func (r *Recorder) ObserveSearch(status string, seconds float64) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(status).Inc()
	if status == StatusSuccess {
		r.searchDuration.Observe(seconds)
	}
}

// CacheHit records a response cache hit.
func (r *Recorder) CacheHit() {
	if r == nil {
		return
	}
	r.cacheRequests.WithLabelValues(ResultHit).Inc()
}

// CacheMiss records a response cache miss.
func (r *Recorder) CacheMiss() {
	if r == nil {
		return
	}
	r.cacheRequests.WithLabelValues(ResultMiss).Inc()
}

// RadiusExpanded records a search that had to widen its radius.
func (r *Recorder) RadiusExpanded() {
	if r == nil {
		return
	}
	r.expansions.Inc()
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
