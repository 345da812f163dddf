package specialist

import (
	"context"
	"fmt"

	"travel-assistant/pkg/textnorm"
)

// Default answers general questions: a few topics from a static table, the
// rest through the LLM.
type Default struct {
	d Deps
}

// NewDefault creates the general-purpose specialist.
func NewDefault(d Deps) *Default {
	return &Default{d: d.normalize()}
}

func (s *Default) Name() string { return NameDefault }

func (s *Default) Handle(ctx context.Context, req Request) (Result, error) {
	r := req.Resolved
	if answer, ok := StaticAnswer(r.Query); ok {
		return Result{Text: answer}, nil
	}

	extra := contextBlock(r)
	if r.Destination != "" && !r.DestinationDefaulted {
		extra = fmt.Sprintf(ContextInterest, title(r.Destination)) + "\n" + extra
	}
	text, err := generate(ctx, s.d.LLM, req.TimeContext, fmt.Sprintf(PromptDefault, r.Query, extra), CatalogTemperature)
	if err != nil {
		s.d.Logger.Warnf(ctx, "%s: LLM unavailable: %v", LogPrefixDefault, err)
		return Result{Text: FallbackGeneral, Degraded: true}, nil
	}
	return Result{Text: text}, nil
}

// StaticAnswer returns the canned answer for currency, visa, transport and
// seasonal weather questions.
func StaticAnswer(query string) (string, bool) {
	text := textnorm.Normalize(query)
	for _, topic := range staticTopics {
		for _, kw := range topic.keywords {
			if textnorm.ContainsWord(text, kw) {
				return topic.answer, true
			}
		}
	}
	return "", false
}
