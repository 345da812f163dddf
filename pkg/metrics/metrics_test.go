package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.ObserveQuery("eat", 120*time.Millisecond)
	m.ObserveQuery("eat", 80*time.Millisecond)
	m.SpecialistFailed("food")
	m.ToolCall("realtime_weather", "ok")
	m.RateLimited()
	m.SetActiveSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("eat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpecialistErrors.WithLabelValues("food")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitedTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveSessions))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `travel_assistant_queries_total{intent="eat"} 2`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveQuery("plan", time.Second)
		m.SpecialistFailed("x")
		m.LLMCall("ok")
		m.ToolCall("x", "error")
		m.RateLimited()
		m.SetActiveSessions(1)
	})
}

func TestIndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
