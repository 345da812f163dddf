package orchestrator

import "errors"

var (
	ErrEmptyQuery        = errors.New("query is empty")
	ErrMissingDependency = errors.New("orchestrator dependency is missing")
	ErrNoSpecialist      = errors.New("no specialist registered for intent")
)
