package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/chat"
	"travel-assistant/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	History(c *gin.Context)
	Summary(c *gin.Context)
	ClearContext(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
