package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/chat"
	"travel-assistant/internal/middleware"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Cross-cutting
	mw      middleware.Middleware
	metrics *metrics.Metrics
	ready   func() error

	// Chat domain
	chatUC chat.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	Metrics    *metrics.Metrics

	// ReadyCheck reports whether downstream stores are reachable. Nil
	// means always ready.
	ReadyCheck func() error

	ChatUseCase chat.UseCase
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		metrics:     cfg.Metrics,
		ready:       cfg.ReadyCheck,
		chatUC:      cfg.ChatUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
