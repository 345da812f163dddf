package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/middleware"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

type stubUseCase struct{}

func (stubUseCase) ProcessQuery(ctx context.Context, sessionID, query string) (orchestrator.Reply, error) {
	return orchestrator.Reply{SessionID: "new", Text: "xin chào", Intent: model.IntentOther}, nil
}
func (stubUseCase) History(ctx context.Context, sessionID string) ([]model.Interaction, error) {
	return nil, nil
}
func (stubUseCase) Summary(ctx context.Context, sessionID string) (string, error) { return "", nil }
func (stubUseCase) ClearContext(ctx context.Context, sessionID string) error      { return nil }
func (stubUseCase) ClearHistory(ctx context.Context, sessionID string) error      { return nil }
func (stubUseCase) DeleteSession(ctx context.Context, sessionID string) error     { return nil }

func newServer(t *testing.T, ready func() error) *HTTPServer {
	t.Helper()
	m := metrics.New()
	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: string(model.EnvironmentProduction),
		Middleware:  middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 600}, m),
		Metrics:     m,
		ReadyCheck:  ready,
		ChatUseCase: stubUseCase{},
	})
	require.NoError(t, err)
	return srv
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err)
	_, err = New(log.NewNop(), Config{Mode: gin.TestMode, ChatUseCase: stubUseCase{}})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, nil)
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv.Handler(), path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
	}
}

func TestReadyCheckFailure(t *testing.T) {
	srv := newServer(t, func() error { return errors.New("redis down") })
	w := get(srv.Handler(), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "redis")
}

func TestChatRouteAndMetrics(t *testing.T) {
	srv := newServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"xin chào"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"session_id":"new"`)

	w = get(srv.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `travel_assistant_http_requests_total{route="/api/v1/chat",status="200"} 1`)
}
