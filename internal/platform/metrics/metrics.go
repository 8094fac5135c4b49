package metrics

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Posting results.
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is a no-op.
type Metrics struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	postings          *prometheus.CounterVec
	statementDuration *prometheus.HistogramVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns collectors registered on prometheus.DefaultRegisterer.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// New creates and registers the collectors on registerer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_http_requests_total",
				Help: "HTTP requests by route, method and status code.",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		postings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_postings_total",
				Help: "Document postings by document kind and result.",
			},
			[]string{"document", "result"},
		),
		statementDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_statement_generation_seconds",
				Help:    "Time spent generating financial statements.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"statement"},
		),
	}

	registerer.MustRegister(m.httpRequests, m.httpDuration, m.postings, m.statementDuration)
	return m
}

// ObserveHTTP records one completed request.
func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	route = strings.TrimSpace(route)
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// RecordPosting counts a posting attempt.
func (m *Metrics) RecordPosting(document, result string) {
	if m == nil {
		return
	}
	m.postings.WithLabelValues(document, result).Inc()
}

// ObserveStatement records how long a statement took to build.
func (m *Metrics) ObserveStatement(statement string, d time.Duration) {
	if m == nil {
		return
	}
	m.statementDuration.WithLabelValues(statement).Observe(d.Seconds())
}
