package memory

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptySessionID  = errors.New("session id is empty")
)
