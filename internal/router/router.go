package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
)

// Classify determines user intent from message.
func (r *RuleRouter) Classify(ctx context.Context, message string) (Output, error) {
	out := classify(message)
	r.l.Debugf(ctx, "%s: Classified as %s (confidence: %d%%): %s", LogPrefixClassify, out.Intent, out.Confidence, out.Reasoning)
	return out, nil
}

// Classify runs the rules and, for low-confidence results, lets the LLM
// pick the intent. Any LLM problem keeps the rule result.
func (r *LLMRouter) Classify(ctx context.Context, message string) (Output, error) {
	ruled, _ := r.rules.Classify(ctx, message)
	if ruled.Confidence >= LLMAssistBelow || strings.TrimSpace(message) == "" {
		return ruled, nil
	}

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Parts: []llmprovider.Part{{Text: fmt.Sprintf(PromptRouterSystem, message)}}},
		},
		Temperature: RouterTemperature,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixLLMClassify, ErrMsgLLMCallFailed, err)
		ruled.Reasoning = ReasonLLMFallback
		return ruled, nil
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixLLMClassify, ErrMsgEmptyResponse)
		ruled.Reasoning = ReasonLLMFallback
		return ruled, nil
	}

	var output Output
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &output); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixLLMClassify, ErrMsgJSONParseFailed, err)
		ruled.Reasoning = ReasonLLMParseError
		return ruled, nil
	}
	output.Intent = model.Intent(strings.ToLower(strings.TrimSpace(string(output.Intent))))
	if !output.Intent.IsValid() {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixLLMClassify, ErrMsgInvalidIntent, output.Intent)
		return ruled, nil
	}

	output.Reasoning = fmt.Sprintf(ReasonLLMConfirmed, output.Reasoning)
	r.l.Infof(ctx, "%s: Classified as %s (confidence: %d%%)", LogPrefixLLMClassify, output.Intent, output.Confidence)
	return output, nil
}

// stripCodeFence removes a ```json ... ``` wrapper if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"```json", "```"} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimPrefix(s, prefix)
			s = strings.TrimSuffix(s, "```")
			return strings.TrimSpace(s)
		}
	}
	return s
}
