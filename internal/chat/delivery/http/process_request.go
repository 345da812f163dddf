package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat body. A blank message is reported as
// errEmptyMessage so clients get the polite prompt. The body may already
// have been read by the rate limiter.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processChatReq: %v", err)
		return req, errInvalidBody
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	if strings.TrimSpace(req.Message) == "" {
		return req, errEmptyMessage
	}
	return req, nil
}

func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errSessionRequired
	}
	return id, nil
}
