// Package errors carries HTTP-aware errors from handlers to the response
// writer.
package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error with a client-facing code and message.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError builds an HTTPError. When code is a valid HTTP status it is
// also used as the response status; otherwise the status is 400.
func NewHTTPError(code int, message string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 100 && code <= 599 {
		status = code
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common errors.
var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Xin lỗi, đã có lỗi xảy ra. Vui lòng thử lại sau.")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Không tìm thấy dữ liệu")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Bạn gửi quá nhiều yêu cầu, vui lòng thử lại sau.")
)

// AsHTTPError unwraps err into an HTTPError if it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
