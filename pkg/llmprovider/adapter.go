package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"travel-assistant/pkg/gemini"
)

// Provider names accepted by the factory.
const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          toGeminiContents(req.Messages),
		Tools:             toGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderGemini, Err: err}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      fromGeminiContent(resp.Content),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	role := msg.Role
	if role == RoleTool {
		// Gemini carries function responses on user turns.
		role = RoleUser
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &gemini.Content{Role: role, Parts: parts}
}

func toGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toGeminiContent(&msgs[i])
	}
	return contents
}

func toGeminiTools(tools []Tool) []gemini.Tool {
	if len(tools) == 0 {
		return nil
	}
	geminiTools := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		geminiTools[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return geminiTools
}

func fromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return Message{Role: RoleModel, Parts: parts}
}

// ChatCompleter is the subset of *openai.Client used by OpenAIAdapter.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAdapter serves any OpenAI-compatible chat completions endpoint
// (OpenAI, DeepSeek, Qwen compatible mode).
type OpenAIAdapter struct {
	client ChatCompleter
	name   string
	model  string
}

// NewOpenAIAdapter creates an adapter for an OpenAI-compatible endpoint.
// An empty baseURL keeps the go-openai default.
func NewOpenAIAdapter(name, apiKey, baseURL, model string) *OpenAIAdapter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return NewOpenAIAdapterWithClient(name, model, openai.NewClientWithConfig(cfg))
}

// NewOpenAIAdapterWithClient wraps an existing chat completion client.
func NewOpenAIAdapterWithClient(name, model string, client ChatCompleter) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: name, model: model}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    toOpenAIMessages(req),
		Tools:       toOpenAITools(req.Tools),
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	out := &Response{
		Content:      Message{Role: RoleModel},
		ProviderName: a.name,
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if resp.Model != "" {
		out.ModelName = resp.Model
	}
	if len(resp.Choices) == 0 {
		return out, nil
	}

	msg := resp.Choices[0].Message
	if msg.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		var args map[string]interface{}
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				return nil, &ProviderError{Provider: a.name, Err: fmt.Errorf("%w: tool arguments: %v", ErrInvalidResponse, err)}
			}
		}
		out.Content.Parts = append(out.Content.Parts, Part{
			FunctionCall: &FunctionCall{ID: tc.ID, Name: tc.Function.Name, Args: args},
		})
	}
	return out, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

func toOpenAIMessages(req *Request) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		if text := joinText(req.SystemInstruction.Parts); text != "" {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleSystem,
				Content: text,
			})
		}
	}

	for _, msg := range req.Messages {
		var calls []openai.ToolCall
		for _, p := range msg.Parts {
			switch {
			case p.FunctionCall != nil:
				args, _ := json.Marshal(p.FunctionCall.Args)
				calls = append(calls, openai.ToolCall{
					ID:   callID(p.FunctionCall.ID, p.FunctionCall.Name),
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      p.FunctionCall.Name,
						Arguments: string(args),
					},
				})
			case p.FunctionResponse != nil:
				body, _ := json.Marshal(p.FunctionResponse.Response)
				messages = append(messages, openai.ChatCompletionMessage{
					Role:       openai.ChatMessageRoleTool,
					Name:       p.FunctionResponse.Name,
					ToolCallID: callID(p.FunctionResponse.ID, p.FunctionResponse.Name),
					Content:    string(body),
				})
			}
		}

		text := joinText(msg.Parts)
		if text == "" && len(calls) == 0 {
			continue
		}
		role := openai.ChatMessageRoleUser
		if msg.Role == RoleModel || msg.Role == openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:      role,
			Content:   text,
			ToolCalls: calls,
		})
	}
	return messages
}

func toOpenAITools(tools []Tool) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func joinText(parts []Part) string {
	var text string
	for _, p := range parts {
		text += p.Text
	}
	return text
}

func callID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}
