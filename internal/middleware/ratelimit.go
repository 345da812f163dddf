package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"travel-assistant/pkg/response"
)

// RateLimit throttles requests per session. The key is the :id path
// parameter, then the X-Session-ID header, then the session_id of a JSON
// POST body, then the client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := rateLimitKey(c)
		if !m.limiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), LogMsgRateLimited, key, c.FullPath())
			m.metrics.RateLimited()
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return "session:" + id
	}
	if id := c.GetHeader(SessionHeader); id != "" {
		return "session:" + id
	}
	if id := bodySessionID(c); id != "" {
		return "session:" + id
	}
	return "ip:" + c.ClientIP()
}

// bodySessionID reads session_id from a JSON POST body. The body is cached
// on the context, so handlers must bind it with ShouldBindBodyWithJSON.
func bodySessionID(c *gin.Context) string {
	if c.Request.Method != http.MethodPost || c.Request.Body == nil {
		return ""
	}
	var body struct {
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindBodyWithJSON(&body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.SessionID)
}

// rateLimiter keeps one token bucket per key and forgets idle keys.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}
