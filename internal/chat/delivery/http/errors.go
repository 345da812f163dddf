package http

import (
	"errors"
	"net/http"

	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/memory"
	pkgErrors "travel-assistant/pkg/errors"
)

var (
	errEmptyMessage    = pkgErrors.NewHTTPError(http.StatusBadRequest, orchestrator.MsgEmptyQuery)
	errInvalidBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Yêu cầu không hợp lệ, vui lòng gửi JSON có trường message")
	errSessionNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Không tìm thấy phiên trò chuyện")
	errSessionRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Thiếu mã phiên trò chuyện")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, orchestrator.ErrEmptyQuery):
		return errEmptyMessage
	case errors.Is(err, memory.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, memory.ErrEmptySessionID):
		return errSessionRequired
	default:
		return pkgErrors.ErrInternalServerError
	}
}
