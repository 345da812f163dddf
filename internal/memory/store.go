package memory

import (
	"context"
	"errors"
)

// Store persists sessions by ID. Callers serialise access per ID.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, id string, s *Session) error
	Delete(ctx context.Context, id string) error
}

// GetOrCreate returns the stored session or a fresh one when none exists.
func GetOrCreate(ctx context.Context, st Store, id string) (*Session, error) {
	s, err := st.Get(ctx, id)
	if err == nil {
		return s, nil
	}
	if errors.Is(err, ErrSessionNotFound) {
		return NewSession(), nil
	}
	return nil, err
}
