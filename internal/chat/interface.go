// Package chat is the conversation surface shared by the HTTP API and the
// terminal client.
package chat

import (
	"context"

	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/model"
)

// UseCase answers utterances and manages conversation sessions.
type UseCase interface {
	ProcessQuery(ctx context.Context, sessionID, query string) (orchestrator.Reply, error)
	History(ctx context.Context, sessionID string) ([]model.Interaction, error)
	Summary(ctx context.Context, sessionID string) (string, error)
	ClearContext(ctx context.Context, sessionID string) error
	ClearHistory(ctx context.Context, sessionID string) error
	DeleteSession(ctx context.Context, sessionID string) error
}

var _ UseCase = (*orchestrator.Orchestrator)(nil)
