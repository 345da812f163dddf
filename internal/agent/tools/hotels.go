package tools

import (
	"context"
	"fmt"
	"time"

	"travel-assistant/internal/agent"
	pkgLog "travel-assistant/pkg/log"
	"travel-assistant/pkg/serpapi"
)

// SearchHotelsTool looks up hotels and filters them by budget tier. A
// failed or empty search returns the curated suggestions instead.
type SearchHotelsTool struct {
	client serpapi.IHotels
	now    func() time.Time
	l      pkgLog.Logger
}

// NewSearchHotelsTool creates the search_hotels tool. client may be nil.
func NewSearchHotelsTool(client serpapi.IHotels, now func() time.Time, l pkgLog.Logger) agent.Tool {
	if now == nil {
		now = time.Now
	}
	return &SearchHotelsTool{client: client, now: now, l: l}
}

func (t *SearchHotelsTool) Name() string {
	return NameSearchHotels
}

func (t *SearchHotelsTool) Description() string {
	return "Tìm khách sạn tại một điểm đến theo ngày nhận/trả phòng và mức ngân sách (luxury, mid_range, budget)."
}

func (t *SearchHotelsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"destination": map[string]interface{}{
				"type":        "string",
				"description": "Điểm đến",
			},
			"check_in": map[string]interface{}{
				"type":        "string",
				"description": "Ngày nhận phòng YYYY-MM-DD",
			},
			"check_out": map[string]interface{}{
				"type":        "string",
				"description": "Ngày trả phòng YYYY-MM-DD",
			},
			"budget": map[string]interface{}{
				"type":        "string",
				"enum":        []string{serpapi.BudgetLuxury, serpapi.BudgetMidRange, serpapi.BudgetBudget},
				"description": "Mức ngân sách",
			},
			"adults": map[string]interface{}{
				"type":        "integer",
				"description": "Số người lớn",
			},
		},
		"required": []string{"destination"},
	}
}

type SearchHotelsInput struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Budget      string `json:"budget"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
}

type HotelItem struct {
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	Price      string  `json:"price"`
	Highlights string  `json:"highlights"`
	Link       string  `json:"link,omitempty"`
}

type SearchHotelsOutput struct {
	Source      string      `json:"source"` // live or static
	CheckIn     string      `json:"check_in"`
	CheckOut    string      `json:"check_out"`
	Hotels      []HotelItem `json:"hotels,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
}

func (t *SearchHotelsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params SearchHotelsInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}
	if params.Destination == "" {
		return nil, fmt.Errorf("destination parameter is required")
	}
	q, err := t.query(params)
	if err != nil {
		return nil, err
	}
	return SearchHotels(ctx, t.client, q, t.l), nil
}

func (t *SearchHotelsTool) query(p SearchHotelsInput) (serpapi.HotelQuery, error) {
	checkIn, checkOut, err := StayDates(p.CheckIn, p.CheckOut, t.now())
	if err != nil {
		return serpapi.HotelQuery{}, err
	}
	if p.Adults <= 0 {
		p.Adults = 2
	}
	if p.Budget == "" {
		p.Budget = serpapi.BudgetMidRange
	}
	return serpapi.HotelQuery{
		Destination: p.Destination,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      p.Adults,
		Children:    p.Children,
		Budget:      p.Budget,
	}, nil
}

// SearchHotels runs a live search and degrades to the curated table.
func SearchHotels(ctx context.Context, client serpapi.IHotels, q serpapi.HotelQuery, l pkgLog.Logger) SearchHotelsOutput {
	out := SearchHotelsOutput{
		Source:   "live",
		CheckIn:  q.CheckIn.Format(dateLayout),
		CheckOut: q.CheckOut.Format(dateLayout),
	}

	var hotels []serpapi.Hotel
	if client != nil {
		found, err := client.SearchHotels(ctx, q)
		if err != nil {
			l.Warnf(ctx, "%s: live search failed for %q: %v", NameSearchHotels, q.Destination, err)
		}
		hotels = serpapi.FilterByBudget(found, q.Budget)
	}

	if len(hotels) == 0 {
		out.Source = "static"
		out.Suggestions = serpapi.StaticRecommendations(q.Destination, q.Budget)
		return out
	}

	for _, h := range hotels {
		out.Hotels = append(out.Hotels, HotelItem{
			Name:       h.Name,
			Rating:     h.OverallRating,
			Price:      h.Price(),
			Highlights: h.Highlights(),
			Link:       h.Link,
		})
	}
	return out
}

// StayDates parses check-in and check-out. A missing check-in defaults to a
// week from now and a missing or non-increasing check-out to two nights
// after check-in.
func StayDates(checkIn, checkOut string, now time.Time) (time.Time, time.Time, error) {
	in := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, defaultLeadDays)
	if checkIn != "" {
		parsed, err := time.ParseInLocation(dateLayout, checkIn, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid check_in format: %w", err)
		}
		in = parsed
	}

	out := in.AddDate(0, 0, defaultStayNights)
	if checkOut != "" {
		parsed, err := time.ParseInLocation(dateLayout, checkOut, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid check_out format: %w", err)
		}
		if parsed.After(in) {
			out = parsed
		}
	}
	return in, out, nil
}
