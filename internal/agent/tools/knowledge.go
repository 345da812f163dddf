package tools

import (
	"context"
	"fmt"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/knowledge"
)

// SearchKnowledgeTool searches the curated travel knowledge.
type SearchKnowledgeTool struct {
	uc knowledge.UseCase
}

// NewSearchKnowledgeTool creates the search_travel_knowledge tool.
func NewSearchKnowledgeTool(uc knowledge.UseCase) agent.Tool {
	return &SearchKnowledgeTool{uc: uc}
}

func (t *SearchKnowledgeTool) Name() string {
	return NameSearchKnowledge
}

func (t *SearchKnowledgeTool) Description() string {
	return "Tìm thông tin du lịch (địa điểm, món ăn, mẹo) trong cơ sở tri thức. Trả về các đoạn văn liên quan nhất."
}

func (t *SearchKnowledgeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Câu truy vấn bằng ngôn ngữ tự nhiên",
			},
			"destination": map[string]interface{}{
				"type":        "string",
				"description": "Điểm đến, ví dụ 'hội an'",
			},
			"type": map[string]interface{}{
				"type":        "string",
				"enum":        []string{knowledge.TypeLocation, knowledge.TypeFood, knowledge.TypeTip},
				"description": "Loại thông tin cần tìm",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Số kết quả tối đa (mặc định 5)",
			},
		},
		"required": []string{"query"},
	}
}

type SearchKnowledgeInput struct {
	Query       string `json:"query"`
	Destination string `json:"destination"`
	Type        string `json:"type"`
	Limit       int    `json:"limit"`
}

type KnowledgeHit struct {
	Content     string  `json:"content"`
	Type        string  `json:"type"`
	Destination string  `json:"destination"`
	Score       float64 `json:"score"`
}

type SearchKnowledgeOutput struct {
	Count   int            `json:"count"`
	Results []KnowledgeHit `json:"results"`
}

func (t *SearchKnowledgeTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params SearchKnowledgeInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}
	if params.Query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	results, err := t.uc.Search(ctx, knowledge.SearchOptions{
		Query:       params.Query,
		Destination: params.Destination,
		Type:        params.Type,
		Limit:       params.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]KnowledgeHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, KnowledgeHit{
			Content:     r.Document.Content,
			Type:        r.Document.Type,
			Destination: r.Document.Destination,
			Score:       r.Score,
		})
	}
	return SearchKnowledgeOutput{Count: len(hits), Results: hits}, nil
}
