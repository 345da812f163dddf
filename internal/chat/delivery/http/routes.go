package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// is rate limited per session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id/history", mw.RateLimit(), h.History)
		sessions.GET("/:id/summary", mw.RateLimit(), h.Summary)
		sessions.DELETE("/:id/context", mw.RateLimit(), h.ClearContext)
		sessions.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
