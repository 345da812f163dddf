// Package memory keeps per-conversation interaction logs and the derived
// user context used to resolve follow-up questions.
package memory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"travel-assistant/internal/lexicon"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/textnorm"
)

// Session is the memory of one conversation. It is not safe for concurrent
// use; the owner serialises access.
type Session struct {
	History []model.Interaction `json:"conversation_history"`
	Context model.UserContext   `json:"user_context"`

	clock func() time.Time
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{
		History: []model.Interaction{},
		Context: model.NewUserContext(),
	}
}

// WithClock overrides the timestamp source. Used in tests.
func (s *Session) WithClock(clock func() time.Time) *Session {
	s.clock = clock
	return s
}

func (s *Session) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now()
}

// AddInteraction appends a turn and folds info into the current context.
// Only non-zero fields of info overwrite the context; preferences merge key
// by key. Timestamps are stored in UTC so persisted sessions load back
// unchanged.
func (s *Session) AddInteraction(query string, intent model.Intent, agentUsed, result string, info model.ExtractedInfo) model.Interaction {
	s.normalize()

	summary := truncate(result)
	it := model.Interaction{
		ID:            uuid.NewString(),
		Timestamp:     s.now().UTC(),
		UserQuery:     query,
		Intent:        intent,
		AgentUsed:     agentUsed,
		ResultSummary: summary,
		ExtractedInfo: info,
	}
	s.History = append(s.History, it)

	if info.Destination != "" {
		s.Context.CurrentDestination = info.Destination
	}
	if info.TripLength > 0 {
		s.Context.CurrentTripLength = info.TripLength
	}
	if info.Dates != nil && info.Dates.StartDate != "" {
		d := *info.Dates
		s.Context.CurrentDates = &d
	}
	for k, v := range info.Preferences {
		s.Context.Preferences[k] = v
	}

	s.Context.LastIntent = intent
	s.Context.LastResults[agentUsed] = summary

	return it
}

// RelevantContext assembles what the resolver needs for query.
func (s *Session) RelevantContext(query string, intent model.Intent) model.ContextBundle {
	s.normalize()

	return model.ContextBundle{
		CurrentContext:     s.Context.Clone(),
		IsFollowUp:         s.IsFollowUp(query, intent),
		RecentInteractions: lastN(s.History, RecentInteractionsLimit),
		RelevantHistory:    s.relevantHistory(intent),
	}
}

// IsFollowUp reports whether query continues the previous turn: it uses a
// continuation marker or omits the remembered destination. A session with
// no history never has follow-ups.
func (s *Session) IsFollowUp(query string, _ model.Intent) bool {
	if len(s.History) == 0 {
		return false
	}

	text := textnorm.Normalize(query)
	for _, marker := range lexicon.FollowUpMarkers() {
		if textnorm.ContainsWord(text, marker) {
			return true
		}
	}

	dest := s.Context.CurrentDestination
	return dest != "" && !strings.Contains(text, textnorm.Normalize(dest))
}

// ClearContext resets the derived context and keeps the history.
func (s *Session) ClearContext() {
	s.Context = model.NewUserContext()
}

// ClearHistory drops the history and the context.
func (s *Session) ClearHistory() {
	s.History = []model.Interaction{}
	s.Context = model.NewUserContext()
}

// Len returns the number of recorded interactions.
func (s *Session) Len() int {
	return len(s.History)
}

func (s *Session) relevantHistory(intent model.Intent) []model.Interaction {
	var same []model.Interaction
	for _, it := range s.History {
		if it.Intent == intent {
			same = append(same, it)
		}
	}
	return lastN(same, RelevantHistoryLimit)
}

// normalize restores invariants after decoding documents that omitted maps.
func (s *Session) normalize() {
	if s.History == nil {
		s.History = []model.Interaction{}
	}
	if s.Context.Preferences == nil {
		s.Context.Preferences = model.Preferences{}
	}
	if s.Context.LastResults == nil {
		s.Context.LastResults = map[string]string{}
	}
}

func lastN(items []model.Interaction, n int) []model.Interaction {
	if len(items) > n {
		items = items[len(items)-n:]
	}
	out := make([]model.Interaction, len(items))
	copy(out, items)
	return out
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= MaxResultRunes {
		return s
	}
	return string(r[:MaxResultRunes]) + ResultEllipsis
}
