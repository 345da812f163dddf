// Package gemini is a minimal client for the Gemini generateContent API
// with function calling.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Config holds Gemini client configuration.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	HTTPClient *http.Client
}

// Client calls generateContent for one model.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// New creates a Client. Model, URL and HTTP client fall back to the
// package defaults.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		endpoint:   fmt.Sprintf("%s/models/%s:generateContent", cfg.APIURL, url.PathEscape(cfg.Model)),
		httpClient: cfg.HTTPClient,
	}, nil
}

func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends one generation request. A prompt or candidate
// blocked by safety filters returns ErrBlocked; an answer without
// candidates returns ErrEmptyResponse.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	raw, err := c.call(ctx, toWire(req))
	if err != nil {
		return nil, err
	}
	return fromWire(raw)
}

func (c *Client) call(ctx context.Context, req geminiRequest) (*geminiResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerAPIKey, c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(msg))}
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	return &out, nil
}

func toWire(req *Request) geminiRequest {
	out := geminiRequest{Contents: make([]geminiContent, len(req.Messages))}

	if req.SystemInstruction != nil {
		out.SystemInstruction = &geminiContent{Parts: toWireParts(req.SystemInstruction.Parts)}
	}
	for i, msg := range req.Messages {
		out.Contents[i] = geminiContent{Role: msg.Role, Parts: toWireParts(msg.Parts)}
	}

	if len(req.Tools) > 0 {
		decls := make([]geminiFunctionDeclaration, len(req.Tools))
		for i, t := range req.Tools {
			decls[i] = geminiFunctionDeclaration{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
		}
		out.Tools = []geminiTool{{FunctionDeclarations: decls}}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		out.GenerationConfig = &geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}
	return out
}

func toWireParts(parts []Part) []geminiPart {
	out := make([]geminiPart, len(parts))
	for i, p := range parts {
		out[i] = geminiPart{Text: p.Text}
		if p.FunctionCall != nil {
			out[i].FunctionCall = &geminiFunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			out[i].FunctionResponse = &geminiFunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return out
}

func fromWire(resp *geminiResponse) (*Response, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("%w: prompt %s", ErrBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return nil, ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if len(candidate.Content.Parts) == 0 {
		switch candidate.FinishReason {
		case FinishReasonSafety, FinishReasonRecitation, FinishReasonBlocklist:
			return nil, fmt.Errorf("%w: %s", ErrBlocked, candidate.FinishReason)
		}
	}

	parts := make([]Part, len(candidate.Content.Parts))
	for i, p := range candidate.Content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Content:      Content{Role: candidate.Content.Role, Parts: parts},
		FinishReason: candidate.FinishReason,
		Usage:        usage,
	}, nil
}
