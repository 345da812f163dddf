package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/pkg/gemini"
)

type fakeCompleter struct {
	got  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.got = req
	return f.resp, f.err
}

func TestOpenAIAdapter_TextResponse(t *testing.T) {
	fc := &fakeCompleter{resp: openai.ChatCompletionResponse{
		Model: "deepseek-chat",
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "Đà Lạt mát mẻ quanh năm."},
		}},
		Usage: openai.Usage{PromptTokens: 12, CompletionTokens: 8, TotalTokens: 20},
	}}
	a := NewOpenAIAdapterWithClient(ProviderDeepSeek, "deepseek-chat", fc)

	resp, err := a.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "Bạn là trợ lý du lịch."}}},
		Messages:          []Message{{Role: RoleUser, Parts: []Part{{Text: "Đà Lạt thế nào?"}}}},
		Temperature:       0.3,
	})
	require.NoError(t, err)

	require.Len(t, fc.got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fc.got.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, fc.got.Messages[1].Role)
	assert.Equal(t, "deepseek-chat", fc.got.Model)

	assert.Equal(t, "Đà Lạt mát mẻ quanh năm.", resp.Text())
	assert.Equal(t, ProviderDeepSeek, resp.ProviderName)
	assert.Equal(t, 20, resp.Usage.TotalTokens)
}

func TestOpenAIAdapter_ToolRoundTrip(t *testing.T) {
	fc := &fakeCompleter{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role: openai.ChatMessageRoleAssistant,
				ToolCalls: []openai.ToolCall{{
					ID:       "call_1",
					Type:     openai.ToolTypeFunction,
					Function: openai.FunctionCall{Name: "realtime_weather", Arguments: `{"location":"Huế"}`},
				}},
			},
		}},
	}}
	a := NewOpenAIAdapterWithClient(ProviderOpenAI, "gpt-4o-mini", fc)

	req := &Request{
		Messages: []Message{
			{Role: RoleUser, Parts: []Part{{Text: "Thời tiết Huế?"}}},
			{Role: RoleModel, Parts: []Part{{FunctionCall: &FunctionCall{ID: "call_0", Name: "search_travel_knowledge", Args: map[string]interface{}{"query": "Huế"}}}}},
			{Role: RoleTool, Parts: []Part{{FunctionResponse: &FunctionResponse{ID: "call_0", Name: "search_travel_knowledge", Response: map[string]string{"result": "Cố đô"}}}}},
		},
		Tools: []Tool{{Name: "realtime_weather", Description: "weather", Parameters: map[string]interface{}{"type": "object"}}},
	}
	resp, err := a.GenerateContent(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, fc.got.Messages, 3)
	assert.Equal(t, openai.ChatMessageRoleAssistant, fc.got.Messages[1].Role)
	require.Len(t, fc.got.Messages[1].ToolCalls, 1)
	assert.Equal(t, "call_0", fc.got.Messages[1].ToolCalls[0].ID)
	assert.Equal(t, openai.ChatMessageRoleTool, fc.got.Messages[2].Role)
	assert.Equal(t, "call_0", fc.got.Messages[2].ToolCallID)
	require.Len(t, fc.got.Tools, 1)
	assert.Equal(t, "realtime_weather", fc.got.Tools[0].Function.Name)

	calls := resp.FunctionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "call_1", calls[0].ID)
	assert.Equal(t, "Huế", calls[0].Args["location"])
}

func TestOpenAIAdapter_Errors(t *testing.T) {
	a := NewOpenAIAdapterWithClient(ProviderQwen, "qwen-plus", &fakeCompleter{err: errors.New("boom")})
	_, err := a.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Parts: []Part{{Text: "hi"}}}}})
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ProviderQwen, pe.Provider)

	bad := &fakeCompleter{resp: openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{{
		Message: openai.ChatCompletionMessage{ToolCalls: []openai.ToolCall{{Function: openai.FunctionCall{Name: "x", Arguments: "{not json"}}}},
	}}}}
	a = NewOpenAIAdapterWithClient(ProviderQwen, "qwen-plus", bad)
	_, err = a.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Parts: []Part{{Text: "hi"}}}}})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGeminiAdapter_RoundTrip(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates":[{"content":{"role":"model","parts":[{"functionCall":{"name":"search_hotels","args":{"location":"Nha Trang"}}}]}}],
			"usageMetadata":{"promptTokenCount":7,"candidatesTokenCount":3,"totalTokenCount":10}
		}`))
	}))
	defer srv.Close()

	client, err := gemini.New(gemini.Config{APIKey: "k", APIURL: srv.URL})
	require.NoError(t, err)
	a := NewGeminiAdapter(client)

	resp, err := a.GenerateContent(context.Background(), &Request{
		Messages: []Message{
			{Role: RoleUser, Parts: []Part{{Text: "Khách sạn Nha Trang"}}},
			{Role: RoleTool, Parts: []Part{{FunctionResponse: &FunctionResponse{Name: "noop", Response: map[string]string{"ok": "1"}}}}},
		},
	})
	require.NoError(t, err)

	contents := body["contents"].([]interface{})
	require.Len(t, contents, 2)
	assert.Equal(t, RoleUser, contents[1].(map[string]interface{})["role"])

	calls := resp.FunctionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "search_hotels", calls[0].Name)
	assert.Equal(t, ProviderGemini, resp.ProviderName)
	assert.Equal(t, 10, resp.Usage.TotalTokens)
}
