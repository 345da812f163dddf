package specialist

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/knowledge"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
	pkgLog "travel-assistant/pkg/log"
	"travel-assistant/pkg/textnorm"
)

// generate runs a single-turn completion.
func generate(ctx context.Context, llm agent.Generator, timeContext, prompt string, temperature float64) (string, error) {
	if llm == nil {
		return "", ErrNoLLM
	}
	resp, err := llm.GenerateContent(ctx, request(timeContext, prompt, temperature))
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", agent.ErrEmptyLLMResponse
	}
	return text, nil
}

func request(timeContext, prompt string, temperature float64) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleUser,
			Parts: []llmprovider.Part{{Text: SystemPrompt + timeContext}},
		},
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Temperature: temperature,
	}
}

// references fetches up to limit knowledge snippets of one type.
func references(ctx context.Context, kn knowledge.UseCase, l pkgLog.Logger, query, destination, typ string, limit int) []string {
	if kn == nil || limit <= 0 {
		return nil
	}
	results, err := kn.Search(ctx, knowledge.SearchOptions{
		Query:       query,
		Destination: destination,
		Type:        typ,
		Limit:       limit,
	})
	if err != nil {
		l.Warnf(ctx, "specialist: knowledge search %s/%s: %v", destination, typ, err)
		return nil
	}
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Document.Content)
	}
	return out
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return NoReferences
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "- " + it
	}
	return strings.Join(lines, "\n")
}

func numberedList(items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, it)
	}
	return strings.Join(lines, "\n")
}

// contextBlock renders preferences, follow-up state and related history for
// a prompt. It is empty when there is nothing to say.
func contextBlock(r model.Resolved) string {
	var lines []string
	if p := formatPreferences(r.Preferences); p != "" {
		lines = append(lines, fmt.Sprintf(ContextPrefs, p))
	}
	if r.IsFollowUp {
		lines = append(lines, ContextFollowUp)
	}
	if r.HistoryText != "" {
		lines = append(lines, fmt.Sprintf(ContextHistory, r.HistoryText))
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func formatPreferences(p model.Preferences) string {
	if len(p) == 0 {
		return ""
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + p[k]
	}
	return strings.Join(parts, ", ")
}

func quantity(q int) int {
	if q <= 0 {
		return DefaultQuantity
	}
	return q
}

func title(destination string) string {
	return textnorm.Title(destination)
}

func searchQuery(r model.Resolved, fallback string) string {
	if q := strings.TrimSpace(r.Query); q != "" {
		return q
	}
	return fallback
}
