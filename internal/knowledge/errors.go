package knowledge

import "errors"

var (
	ErrUnknownDestination = errors.New("knowledge: unknown destination")
	ErrEmptyQuery         = errors.New("knowledge: empty query")
)
