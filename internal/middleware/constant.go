package middleware

import "time"

// SessionHeader lets clients key the rate limit by conversation on
// requests that carry no session ID in the path or body.
const SessionHeader = "X-Session-ID"

// Limiter cache bounds
const (
	limiterCacheSize = 1000
	limiterCacheTTL  = 5 * time.Minute
)

// Log messages
const (
	LogMsgRateLimited = "rate limit exceeded for %s on %s"
)
