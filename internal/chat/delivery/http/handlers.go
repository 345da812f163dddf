package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a message
// @Description Answers one travel question. Omit session_id to start a new conversation; the reply carries the session ID to reuse.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.ProcessQuery(ctx, req.SessionID, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessQuery: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newChatResp(reply))
}

// History godoc
// @Summary     Conversation history
// @Description Returns every recorded interaction of a session.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	items, err := h.uc.History(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newHistoryResp(id, items))
}

// Summary godoc
// @Summary     Conversation summary
// @Description Returns the remembered destination, trip length, dates and preferences.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} summaryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	summary, err := h.uc.Summary(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, summaryResp{SessionID: id, Summary: summary})
}

// ClearContext godoc
// @Summary     Clear conversation context
// @Description Forgets the remembered destination, dates and preferences. The history is kept.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/context [DELETE]
func (h *handler) ClearContext(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ClearContext(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.ClearContext: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a session
// @Description Permanently removes a session and its history.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteSession(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
