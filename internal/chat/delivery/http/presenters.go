package http

import (
	"time"

	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
	Message   string `json:"message"    binding:"max=2000"`
}

// --- Response DTOs ---

type chatResp struct {
	SessionID   string `json:"session_id"`
	Reply       string `json:"reply"`
	Intent      string `json:"intent"`
	Confidence  int    `json:"confidence"`
	Agent       string `json:"agent"`
	Destination string `json:"destination,omitempty"`
	Degraded    bool   `json:"degraded"`
}

func newChatResp(r orchestrator.Reply) chatResp {
	return chatResp{
		SessionID:   r.SessionID,
		Reply:       r.Text,
		Intent:      string(r.Intent),
		Confidence:  r.Confidence,
		Agent:       r.Agent,
		Destination: r.Destination,
		Degraded:    r.Degraded,
	}
}

type interactionResp struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Query       string    `json:"query"`
	Intent      string    `json:"intent"`
	Agent       string    `json:"agent"`
	Result      string    `json:"result"`
	Destination string    `json:"destination,omitempty"`
}

type historyResp struct {
	SessionID    string            `json:"session_id"`
	Interactions []interactionResp `json:"interactions"`
}

func newHistoryResp(sessionID string, items []model.Interaction) historyResp {
	out := historyResp{SessionID: sessionID, Interactions: make([]interactionResp, 0, len(items))}
	for _, it := range items {
		out.Interactions = append(out.Interactions, interactionResp{
			ID:          it.ID,
			Timestamp:   it.Timestamp,
			Query:       it.UserQuery,
			Intent:      string(it.Intent),
			Agent:       it.AgentUsed,
			Result:      it.ResultSummary,
			Destination: it.ExtractedInfo.Destination,
		})
	}
	return out
}

type summaryResp struct {
	SessionID string `json:"session_id"`
	Summary   string `json:"summary"`
}
