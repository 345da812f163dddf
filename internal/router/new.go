package router

import (
	"context"

	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, message string) (Output, error)
}

// Generator is the LLM surface the assisted router needs.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// RuleRouter classifies with the deterministic keyword rules only.
type RuleRouter struct {
	l log.Logger
}

// LLMRouter runs the rules first and asks the LLM to arbitrate only when
// the rules fell through to a zero-score default.
type LLMRouter struct {
	rules *RuleRouter
	llm   Generator
	l     log.Logger
}

var (
	_ Router = (*RuleRouter)(nil)
	_ Router = (*LLMRouter)(nil)
)

// New creates a RuleRouter.
func New(l log.Logger) *RuleRouter {
	return &RuleRouter{l: l}
}

// NewLLMRouter creates an LLM-assisted router.
func NewLLMRouter(llm Generator, l log.Logger) *LLMRouter {
	return &LLMRouter{
		rules: New(l),
		llm:   llm,
		l:     l,
	}
}
