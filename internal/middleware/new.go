package middleware

import (
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

// Config tunes the middleware set.
type Config struct {
	// RateLimitPerMin is the sustained request rate allowed per session.
	// Zero disables rate limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics *metrics.Metrics
}

func New(l log.Logger, cfg Config, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
