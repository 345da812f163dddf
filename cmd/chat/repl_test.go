package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/memory"
	"travel-assistant/internal/model"
	pkgLog "travel-assistant/pkg/log"
)

type stubAssistant struct {
	queries  []string
	cleared  int
	summary  string
	queryErr error
}

func (s *stubAssistant) ProcessQuery(ctx context.Context, sessionID, query string) (orchestrator.Reply, error) {
	s.queries = append(s.queries, query)
	if s.queryErr != nil {
		return orchestrator.Reply{}, s.queryErr
	}
	return orchestrator.Reply{SessionID: sessionID, Text: "trả lời: " + query, Intent: model.IntentEat}, nil
}

func (s *stubAssistant) Summary(ctx context.Context, sessionID string) (string, error) {
	if s.summary == "" {
		return "", memory.ErrSessionNotFound
	}
	return s.summary, nil
}

func (s *stubAssistant) ClearHistory(ctx context.Context, sessionID string) error {
	s.cleared++
	return nil
}

func runScript(t *testing.T, uc assistant, script string) string {
	t.Helper()
	var out strings.Builder
	r := &repl{uc: uc, sessionID: "cli", in: strings.NewReader(script), out: &out}
	r.run(context.Background())
	return out.String()
}

func TestREPL_Commands(t *testing.T) {
	uc := &stubAssistant{}
	out := runScript(t, uc, "món ăn ở huế\n\nlịch sử\nXóa\nthoát\nkhông đọc tới\n")

	assert.Equal(t, []string{"món ăn ở huế"}, uc.queries)
	assert.Contains(t, out, "trả lời: món ăn ở huế")
	assert.Contains(t, out, orchestrator.MsgEmptyQuery)
	assert.Contains(t, out, memory.SummaryEmpty)
	assert.Contains(t, out, cleared)
	assert.Equal(t, 1, uc.cleared)
	assert.Contains(t, out, goodbye)
}

func TestREPL_SummaryAndEOF(t *testing.T) {
	uc := &stubAssistant{summary: "📍 Điểm đến: hội an"}
	out := runScript(t, uc, "history")
	assert.Contains(t, out, "📍 Điểm đến: hội an")
	assert.Contains(t, out, goodbye)
}

func TestREPL_QueryError(t *testing.T) {
	uc := &stubAssistant{queryErr: errors.New("boom")}
	out := runScript(t, uc, "đi đâu chơi\nexit\n")
	assert.Contains(t, out, orchestrator.MsgInternalError)
}

func TestSessionFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cli.json")

	store := memory.NewMemoryStore(pkgLog.NewNop(), 10, time.Hour)
	s := memory.NewSession()
	s.AddInteraction("ăn gì ở đà lạt", model.IntentEat, "food_agent", "bánh căn", model.ExtractedInfo{Destination: "đà lạt"})
	require.NoError(t, store.Save(ctx, "cli", s))
	require.NoError(t, persistSession(ctx, store, "cli", path))

	fresh := memory.NewMemoryStore(pkgLog.NewNop(), 10, time.Hour)
	require.NoError(t, restoreSession(ctx, fresh, "cli", path))
	got, err := fresh.Get(ctx, "cli")
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "đà lạt", got.Context.CurrentDestination)

	empty := memory.NewMemoryStore(pkgLog.NewNop(), 10, time.Hour)
	require.NoError(t, restoreSession(ctx, empty, "cli", filepath.Join(t.TempDir(), "missing.json")))
	_, err = empty.Get(ctx, "cli")
	assert.ErrorIs(t, err, memory.ErrSessionNotFound)
}
