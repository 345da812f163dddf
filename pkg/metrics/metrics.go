// Package metrics exposes the assistant's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "travel_assistant"

// Metrics holds every collector on its own registry so that tests and
// multiple servers never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	QueriesTotal      *prometheus.CounterVec
	SpecialistErrors  *prometheus.CounterVec
	QueryDuration     *prometheus.HistogramVec
	LLMCallsTotal     *prometheus.CounterVec
	ToolCallsTotal    *prometheus.CounterVec
	ActiveSessions    prometheus.Gauge
	RateLimitedTotal  prometheus.Counter
	HTTPRequestsTotal *prometheus.CounterVec
}

// New registers the collectors, plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		QueriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of processed queries by intent",
		}, []string{"intent"}),
		SpecialistErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "specialist_errors_total",
			Help:      "Total number of specialist failures by specialist",
		}, []string{"specialist"}),
		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "End-to-end query processing time",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"intent"}),
		LLMCallsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "Total number of LLM calls by outcome",
		}, []string{"outcome"}),
		ToolCallsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Total number of agent tool invocations",
		}, []string{"tool", "outcome"}),
		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently held by the in-memory store",
		}),
		RateLimitedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}),
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"route", "status"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveQuery records one processed query.
func (m *Metrics) ObserveQuery(intent string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(intent).Inc()
	m.QueryDuration.WithLabelValues(intent).Observe(elapsed.Seconds())
}

// SpecialistFailed records a specialist error.
func (m *Metrics) SpecialistFailed(name string) {
	if m == nil {
		return
	}
	m.SpecialistErrors.WithLabelValues(name).Inc()
}

// LLMCall records an LLM call outcome ("ok" or "error").
func (m *Metrics) LLMCall(outcome string) {
	if m == nil {
		return
	}
	m.LLMCallsTotal.WithLabelValues(outcome).Inc()
}

// ToolCall records a tool invocation.
func (m *Metrics) ToolCall(tool, outcome string) {
	if m == nil {
		return
	}
	m.ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
}

// RateLimited records a rejected request.
func (m *Metrics) RateLimited() {
	if m == nil {
		return
	}
	m.RateLimitedTotal.Inc()
}

// SetActiveSessions reports the current in-memory session count.
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}
