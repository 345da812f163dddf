package agent

import (
	"context"

	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/metrics"
)

// Metric outcomes
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

type instrumentedGenerator struct {
	next Generator
	m    *metrics.Metrics
}

// InstrumentGenerator counts LLM calls by outcome.
func InstrumentGenerator(next Generator, m *metrics.Metrics) Generator {
	if next == nil || m == nil {
		return next
	}
	return &instrumentedGenerator{next: next, m: m}
}

func (g *instrumentedGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	resp, err := g.next.GenerateContent(ctx, req)
	if err != nil {
		g.m.LLMCall(OutcomeError)
		return nil, err
	}
	g.m.LLMCall(OutcomeOK)
	return resp, nil
}

type instrumentedTool struct {
	Tool
	m *metrics.Metrics
}

// InstrumentTool counts executions of t by outcome.
func InstrumentTool(t Tool, m *metrics.Metrics) Tool {
	if m == nil {
		return t
	}
	return &instrumentedTool{Tool: t, m: m}
}

func (t *instrumentedTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	out, err := t.Tool.Execute(ctx, params)
	if err != nil {
		t.m.ToolCall(t.Name(), OutcomeError)
		return nil, err
	}
	t.m.ToolCall(t.Name(), OutcomeOK)
	return out, nil
}
