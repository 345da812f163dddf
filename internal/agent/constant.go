package agent

// MaxAgentSteps bounds the reason/act/observe loop.
const MaxAgentSteps = 5

const (
	LogPrefixRunTools = "internal.agent.RunTools"

	ErrMsgAgentLLMError    = "agent LLM error at step %d"
	ErrMsgToolNotFound     = "tool not found"
	MsgMaxStepsExceeded    = "Trợ lý đã suy nghĩ quá lâu (vượt quá số bước cho phép). Vui lòng thử hỏi ngắn gọn hơn."
	LogMsgAgentStep        = "Agent step %d/%d"
	LogMsgAgentFinished    = "Agent finished at step %d"
	LogMsgAgentCallingTool = "Agent calling tool: %s with args: %+v"
	LogMsgToolFailed       = "Tool %s failed: %v"
	LogMsgAgentMaxSteps    = "Agent exceeded max steps (%d)"
)
