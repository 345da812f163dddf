package agent

import "errors"

// ErrEmptyLLMResponse is returned when the model answers with neither text
// nor a tool call.
var ErrEmptyLLMResponse = errors.New("agent: empty LLM response")
