package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"travel-assistant/internal/memory"
	"travel-assistant/internal/model"
	pkgLog "travel-assistant/pkg/log"
)

// History returns the interaction log of a session.
func (o *Orchestrator) History(ctx context.Context, sessionID string) ([]model.Interaction, error) {
	s, err := o.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.History, nil
}

// Summary returns the human-readable session summary.
func (o *Orchestrator) Summary(ctx context.Context, sessionID string) (string, error) {
	s, err := o.load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return s.Summary(), nil
}

// ClearContext forgets the current destination, dates and preferences
// while keeping the interaction log.
func (o *Orchestrator) ClearContext(ctx context.Context, sessionID string) error {
	return o.update(ctx, sessionID, (*memory.Session).ClearContext)
}

// ClearHistory empties the interaction log and the context.
func (o *Orchestrator) ClearHistory(ctx context.Context, sessionID string) error {
	return o.update(ctx, sessionID, (*memory.Session).ClearHistory)
}

// DeleteSession removes a session entirely.
func (o *Orchestrator) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return memory.ErrEmptySessionID
	}
	unlock := o.locks.lock(sessionID)
	defer unlock()

	if err := o.store.Delete(pkgLog.WithSessionID(ctx, sessionID), sessionID); err != nil {
		return fmt.Errorf("%s: delete: %w", LogPrefixSessions, err)
	}
	o.reportSessions()
	return nil
}

func (o *Orchestrator) load(ctx context.Context, sessionID string) (*memory.Session, error) {
	if sessionID == "" {
		return nil, memory.ErrEmptySessionID
	}
	unlock := o.locks.lock(sessionID)
	defer unlock()

	s, err := o.store.Get(pkgLog.WithSessionID(ctx, sessionID), sessionID)
	if err != nil {
		if errors.Is(err, memory.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %s: %w", LogPrefixSessions, ErrMsgLoadSession, err)
	}
	return s, nil
}

func (o *Orchestrator) update(ctx context.Context, sessionID string, fn func(*memory.Session)) error {
	if sessionID == "" {
		return memory.ErrEmptySessionID
	}
	unlock := o.locks.lock(sessionID)
	defer unlock()

	ctx = pkgLog.WithSessionID(ctx, sessionID)
	s, err := o.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	fn(s)
	if err := o.store.Save(ctx, sessionID, s); err != nil {
		return fmt.Errorf("%s: %s: %w", LogPrefixSessions, ErrMsgSaveSession, err)
	}
	return nil
}

// reportSessions publishes the session count when the store can tell it.
func (o *Orchestrator) reportSessions() {
	if counter, ok := o.store.(interface{ Len() int }); ok {
		o.metrics.SetActiveSessions(counter.Len())
	}
}
