package tools_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/agent/tools"
	"travel-assistant/internal/knowledge"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/serpapi"
	"travel-assistant/pkg/weather"
)

var vn = time.FixedZone("ICT", 7*3600)

// mockWeather
type mockWeather struct {
	current  *weather.Current
	forecast *weather.Forecast
	err      error
}

func (m *mockWeather) Current(ctx context.Context, city string) (*weather.Current, error) {
	return m.current, m.err
}

func (m *mockWeather) Forecast(ctx context.Context, city string) (*weather.Forecast, error) {
	return m.forecast, m.err
}

// mockKnowledge
type mockKnowledge struct {
	lastOpt knowledge.SearchOptions
	results []knowledge.SearchResult
	err     error
}

func (m *mockKnowledge) Bootstrap(ctx context.Context) error { return nil }
func (m *mockKnowledge) Search(ctx context.Context, opt knowledge.SearchOptions) ([]knowledge.SearchResult, error) {
	m.lastOpt = opt
	return m.results, m.err
}
func (m *mockKnowledge) Destination(name string) (knowledge.Destination, bool) {
	return knowledge.Destination{}, false
}

// mockHotels
type mockHotels struct {
	hotels []serpapi.Hotel
	err    error
	last   serpapi.HotelQuery
}

func (m *mockHotels) SearchHotels(ctx context.Context, q serpapi.HotelQuery) ([]serpapi.Hotel, error) {
	m.last = q
	return m.hotels, m.err
}

func TestRealtimeWeatherTool(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, vn)
	client := &mockWeather{
		current: &weather.Current{City: "Hanoi", Description: "trời quang", Temperature: 24, Humidity: 60, ObservedAt: day.Add(9 * time.Hour)},
		forecast: &weather.Forecast{City: "Hanoi", Entries: []weather.Entry{
			{Time: day.Add(7 * time.Hour), Temperature: 22, TempMin: 21, TempMax: 23, Description: "mưa nhẹ"},
			{Time: day.Add(13 * time.Hour), Temperature: 28, TempMin: 27, TempMax: 29, Description: "mưa nhẹ"},
		}},
	}
	tool := tools.NewRealtimeWeatherTool(client, vn, log.NewNop())

	assert.Equal(t, tools.NameRealtimeWeather, tool.Name())
	assert.NotEmpty(t, tool.Description())
	assert.NotEmpty(t, tool.Parameters())

	t.Run("current", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{"destination": "hà nội"})
		require.NoError(t, err)
		out := res.(tools.RealtimeWeatherOutput)
		assert.True(t, out.Available)
		assert.Equal(t, 24.0, out.Temperature)
		assert.Equal(t, weather.Recommend(*client.current), out.Recommendation)
	})

	t.Run("forecast hour", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{"destination": "hà nội", "date": "2026-10-20", "hour": float64(12)})
		require.NoError(t, err)
		out := res.(tools.RealtimeWeatherOutput)
		assert.True(t, out.Available)
		assert.Equal(t, "13:00", out.Time)
		assert.Equal(t, 28.0, out.Temperature)
		assert.Equal(t, 21.0, out.TempMin)
		assert.Equal(t, 29.0, out.TempMax)
		assert.Contains(t, out.Recommendation, "mang đồ đi mưa")
	})

	t.Run("beyond forecast", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{"destination": "hà nội", "date": "2026-11-30"})
		require.NoError(t, err)
		out := res.(tools.RealtimeWeatherOutput)
		assert.False(t, out.Available)
		assert.Equal(t, weather.Fallback(), out.Recommendation)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := tool.Execute(ctx, map[string]interface{}{})
		assert.Error(t, err)
		_, err = tool.Execute(ctx, map[string]interface{}{"destination": "huế", "date": "20/10/2026"})
		assert.Error(t, err)

		failing := tools.NewRealtimeWeatherTool(&mockWeather{err: weather.ErrCityNotFound}, vn, log.NewNop())
		_, err = failing.Execute(ctx, map[string]interface{}{"destination": "atlantis"})
		assert.ErrorIs(t, err, weather.ErrCityNotFound)
	})
}

func TestSearchKnowledgeTool(t *testing.T) {
	ctx := context.Background()
	uc := &mockKnowledge{results: []knowledge.SearchResult{
		{Document: knowledge.Document{Content: "Cao lầu", Type: knowledge.TypeFood, Destination: "hội an"}, Score: 0.8},
	}}
	tool := tools.NewSearchKnowledgeTool(uc)
	assert.Equal(t, tools.NameSearchKnowledge, tool.Name())

	res, err := tool.Execute(ctx, map[string]interface{}{"query": "món ngon", "destination": "hội an", "type": "food", "limit": float64(3)})
	require.NoError(t, err)
	out := res.(tools.SearchKnowledgeOutput)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "Cao lầu", out.Results[0].Content)
	assert.Equal(t, knowledge.SearchOptions{Query: "món ngon", Destination: "hội an", Type: "food", Limit: 3}, uc.lastOpt)

	_, err = tool.Execute(ctx, map[string]interface{}{"destination": "hội an"})
	assert.Error(t, err)

	uc.err = errors.New("down")
	_, err = tool.Execute(ctx, map[string]interface{}{"query": "x"})
	assert.Error(t, err)
}

func TestSearchHotelsTool(t *testing.T) {
	ctx := context.Background()
	now := func() time.Time { return time.Date(2026, 10, 18, 15, 0, 0, 0, vn) }

	t.Run("live results filtered", func(t *testing.T) {
		client := &mockHotels{hotels: []serpapi.Hotel{
			{Name: "A", OverallRating: 4.6, RatePerNight: serpapi.Rate{ExtractedLowest: 2500000}},
			{Name: "B", OverallRating: 3.2},
			{Name: "C", OverallRating: 4.1},
		}}
		tool := tools.NewSearchHotelsTool(client, now, log.NewNop())

		res, err := tool.Execute(ctx, map[string]interface{}{"destination": "đà nẵng", "budget": "luxury", "check_in": "2026-11-01", "check_out": "2026-11-04"})
		require.NoError(t, err)
		out := res.(tools.SearchHotelsOutput)
		assert.Equal(t, "live", out.Source)
		require.Len(t, out.Hotels, 2)
		assert.Equal(t, "A", out.Hotels[0].Name)
		assert.Equal(t, "Từ 2.500.000 VND/đêm", out.Hotels[0].Price)
		assert.Equal(t, "2026-11-04", out.CheckOut)
		assert.Equal(t, 2, client.last.Adults)
	})

	t.Run("default dates", func(t *testing.T) {
		client := &mockHotels{}
		tool := tools.NewSearchHotelsTool(client, now, log.NewNop())
		_, err := tool.Execute(ctx, map[string]interface{}{"destination": "hà nội"})
		require.NoError(t, err)
		assert.Equal(t, "2026-10-25", client.last.CheckIn.Format("2006-01-02"))
		assert.Equal(t, "2026-10-27", client.last.CheckOut.Format("2006-01-02"))
		assert.Equal(t, serpapi.BudgetMidRange, client.last.Budget)
	})

	t.Run("failure falls back to static", func(t *testing.T) {
		tool := tools.NewSearchHotelsTool(&mockHotels{err: errors.New("quota")}, now, log.NewNop())
		res, err := tool.Execute(ctx, map[string]interface{}{"destination": "hà nội", "budget": "budget"})
		require.NoError(t, err)
		out := res.(tools.SearchHotelsOutput)
		assert.Equal(t, "static", out.Source)
		assert.Equal(t, serpapi.StaticRecommendations("hà nội", "budget"), out.Suggestions)
	})

	t.Run("no client", func(t *testing.T) {
		tool := tools.NewSearchHotelsTool(nil, now, log.NewNop())
		res, err := tool.Execute(ctx, map[string]interface{}{"destination": "sa pa"})
		require.NoError(t, err)
		assert.Equal(t, "static", res.(tools.SearchHotelsOutput).Source)
	})

	t.Run("bad input", func(t *testing.T) {
		tool := tools.NewSearchHotelsTool(nil, now, log.NewNop())
		_, err := tool.Execute(ctx, map[string]interface{}{})
		assert.Error(t, err)
		_, err = tool.Execute(ctx, map[string]interface{}{"destination": "x", "check_in": "mai"})
		assert.Error(t, err)
	})
}

func TestStayDates(t *testing.T) {
	now := time.Date(2026, 10, 18, 23, 0, 0, 0, vn)

	in, out, err := tools.StayDates("2026-12-01", "2026-11-30", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-12-01", in.Format("2006-01-02"))
	assert.Equal(t, "2026-12-03", out.Format("2006-01-02"), "check-out before check-in is replaced")
}
