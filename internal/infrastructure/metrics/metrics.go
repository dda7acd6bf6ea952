// Package metrics exposes search telemetry as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "flygpt"

// Metrics holds the collectors for one process. Each instance owns its
// registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	dateFetches   *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	candidates    *prometheus.CounterVec
	searches      *prometheus.CounterVec
	lookupCalls   *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		dateFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "date_fetches_total",
			Help:      "Per-date fetches by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "date_fetch_duration_seconds",
			Help:      "Time spent fetching one date.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"outcome"}),
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "candidates_total",
			Help:      "Merged listings by acceptance decision.",
		}, []string{"decision"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "searches_total",
			Help:      "Completed searches by result.",
		}, []string{"result"}),
		lookupCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "lookup_calls_total",
			Help:      "Calls made to the flight lookup source by outcome.",
		}, []string{"lookup", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.dateFetches,
		m.fetchDuration,
		m.candidates,
		m.searches,
		m.lookupCalls,
		m.httpRequests,
		m.httpDuration,
		prometheus.NewGoCollector(),
	)
	return m
}

// ObserveDateFetch records one finished date fetch.
func (m *Metrics) ObserveDateFetch(outcome string, elapsed time.Duration) {
	m.dateFetches.WithLabelValues(outcome).Inc()
	m.fetchDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveCandidates records count listings that got decision.
func (m *Metrics) ObserveCandidates(decision string, count int) {
	if count <= 0 {
		return
	}
	m.candidates.WithLabelValues(decision).Add(float64(count))
}

// ObserveSearch records one finished search.
func (m *Metrics) ObserveSearch(result string) {
	m.searches.WithLabelValues(result).Inc()
}

// ObserveLookup records one call to a lookup source.
func (m *Metrics) ObserveLookup(lookup, outcome string) {
	m.lookupCalls.WithLabelValues(lookup, outcome).Inc()
}

// ObserveHTTP records one served HTTP request. route is the registered
// path pattern, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
