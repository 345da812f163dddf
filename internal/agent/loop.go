package agent

import (
	"context"
	"fmt"
	"strings"

	"travel-assistant/pkg/llmprovider"
	pkgLog "travel-assistant/pkg/log"
)

// RunTools runs the reason/act/observe loop: the model either answers or
// asks for tools, whose results are fed back until it answers or maxSteps
// is used up. Running out of steps is not an error; the caller gets a
// polite message instead.
func RunTools(ctx context.Context, llm Generator, registry *ToolRegistry, req *llmprovider.Request, maxSteps int, l pkgLog.Logger) (string, error) {
	if maxSteps <= 0 {
		maxSteps = MaxAgentSteps
	}
	if registry != nil && registry.Len() > 0 {
		req.Tools = registry.ToFunctionDefinitions()
	}

	for step := 0; step < maxSteps; step++ {
		l.Debugf(ctx, LogMsgAgentStep, step+1, maxSteps)

		// Reason
		resp, err := llm.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf("%s: "+ErrMsgAgentLLMError+": %w", LogPrefixRunTools, step+1, err)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			text := strings.TrimSpace(resp.Text())
			if text == "" {
				return "", fmt.Errorf("%s: %w", LogPrefixRunTools, ErrEmptyLLMResponse)
			}
			l.Debugf(ctx, LogMsgAgentFinished, step+1)
			return text, nil
		}

		// Act
		callParts := make([]llmprovider.Part, 0, len(calls))
		resultParts := make([]llmprovider.Part, 0, len(calls))
		for _, call := range calls {
			call := call
			l.Infof(ctx, LogMsgAgentCallingTool, call.Name, call.Args)
			callParts = append(callParts, llmprovider.Part{FunctionCall: &call})
			resultParts = append(resultParts, llmprovider.Part{
				FunctionResponse: &llmprovider.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: execute(ctx, registry, call, l),
				},
			})
		}

		// Observe
		req.Messages = append(req.Messages,
			llmprovider.Message{Role: llmprovider.RoleModel, Parts: callParts},
			llmprovider.Message{Role: llmprovider.RoleTool, Parts: resultParts},
		)
	}

	l.Warnf(ctx, LogMsgAgentMaxSteps, maxSteps)
	return MsgMaxStepsExceeded, nil
}

func execute(ctx context.Context, registry *ToolRegistry, call llmprovider.FunctionCall, l pkgLog.Logger) interface{} {
	if registry == nil {
		return map[string]string{"error": ErrMsgToolNotFound}
	}
	tool, ok := registry.Get(call.Name)
	if !ok {
		l.Warnf(ctx, "%s: %s: %s", LogPrefixRunTools, ErrMsgToolNotFound, call.Name)
		return map[string]string{"error": ErrMsgToolNotFound}
	}
	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		l.Warnf(ctx, LogMsgToolFailed, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}
