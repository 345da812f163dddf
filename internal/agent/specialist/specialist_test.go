package specialist_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/agent/specialist"
	"travel-assistant/internal/itinerary"
	"travel-assistant/internal/knowledge"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/serpapi"
	"travel-assistant/pkg/weather"
)

var (
	vn    = time.FixedZone("ICT", 7*3600)
	today = time.Date(2026, 10, 18, 9, 0, 0, 0, vn)
)

type scriptedLLM struct {
	responses []*llmprovider.Response
	err       error
	requests  []llmprovider.Request
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.requests = append(s.requests, *req)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.responses) == 0 {
		return textResponse("ok"), nil
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

func (s *scriptedLLM) lastPrompt() string {
	if len(s.requests) == 0 {
		return ""
	}
	msgs := s.requests[len(s.requests)-1].Messages
	return msgs[0].Parts[0].Text
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{Content: llmprovider.Message{Role: llmprovider.RoleModel, Parts: []llmprovider.Part{{Text: text}}}}
}

type fakeKnowledge struct {
	docs     map[string][]string
	searches []knowledge.SearchOptions
}

func (f *fakeKnowledge) Bootstrap(ctx context.Context) error { return nil }

func (f *fakeKnowledge) Search(ctx context.Context, opt knowledge.SearchOptions) ([]knowledge.SearchResult, error) {
	f.searches = append(f.searches, opt)
	var out []knowledge.SearchResult
	for _, c := range f.docs[opt.Type] {
		if len(out) == opt.Limit {
			break
		}
		out = append(out, knowledge.SearchResult{Document: knowledge.Document{Content: c, Type: opt.Type}})
	}
	return out, nil
}

func (f *fakeKnowledge) Destination(name string) (knowledge.Destination, bool) {
	return knowledge.Destination{}, false
}

func hanoiKnowledge() *fakeKnowledge {
	return &fakeKnowledge{docs: map[string][]string{
		knowledge.TypeFood:     {"Phở Bát Đàn", "Bún chả Hàng Mành", "Chả cá Lã Vọng", "Bánh cuốn Thanh Trì"},
		knowledge.TypeLocation: {"Hồ Hoàn Kiếm", "Văn Miếu", "Phố cổ", "Lăng Bác", "Hồ Tây"},
	}}
}

type fakeWeather struct {
	current  *weather.Current
	forecast *weather.Forecast
	err      error
}

func (f *fakeWeather) Current(ctx context.Context, city string) (*weather.Current, error) {
	return f.current, f.err
}

func (f *fakeWeather) Forecast(ctx context.Context, city string) (*weather.Forecast, error) {
	return f.forecast, f.err
}

type fakeHotels struct {
	hotels []serpapi.Hotel
	err    error
	last   serpapi.HotelQuery
}

func (f *fakeHotels) SearchHotels(ctx context.Context, q serpapi.HotelQuery) ([]serpapi.Hotel, error) {
	f.last = q
	return f.hotels, f.err
}

type echoTool struct{ calls int }

func (t *echoTool) Name() string                       { return "realtime_weather" }
func (t *echoTool) Description() string                { return "weather" }
func (t *echoTool) Parameters() map[string]interface{} { return map[string]interface{}{"type": "object"} }
func (t *echoTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	t.calls++
	return map[string]string{"description": "nắng"}, nil
}

func deps(llm agent.Generator) specialist.Deps {
	return specialist.Deps{
		LLM:       llm,
		Knowledge: hanoiKnowledge(),
		Location:  vn,
		Now:       func() time.Time { return today },
	}
}

func TestNewAllCoversEveryIntent(t *testing.T) {
	all := specialist.NewAll(deps(nil))
	for _, intent := range model.AllIntents {
		assert.Contains(t, all, intent)
	}
	assert.Equal(t, specialist.NameWeather, all[model.IntentWeather].Name())
}

func TestFood(t *testing.T) {
	ctx := context.Background()

	t.Run("needs destination", func(t *testing.T) {
		res, err := specialist.NewFood(deps(nil)).Handle(ctx, specialist.Request{Resolved: model.Resolved{Query: "ăn gì ngon"}})
		require.NoError(t, err)
		assert.True(t, res.Clarification)
		assert.Equal(t, specialist.MsgFoodNeedsDestination, res.Text)
	})

	t.Run("prompt carries quantity and references", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{textResponse("3 món ngon")}}
		d := deps(llm)
		kn := d.Knowledge.(*fakeKnowledge)
		res, err := specialist.NewFood(d).Handle(ctx, specialist.Request{
			Resolved: model.Resolved{Query: "3 món ăn ở hà nội", Destination: "hà nội"},
			Quantity: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, "3 món ngon", res.Text)
		assert.False(t, res.Degraded)

		require.Len(t, kn.searches, 1)
		assert.Equal(t, knowledge.TypeFood, kn.searches[0].Type)
		assert.Equal(t, 3, kn.searches[0].Limit)

		prompt := llm.lastPrompt()
		assert.Contains(t, prompt, "Hà Nội")
		assert.Contains(t, prompt, "- Chả cá Lã Vọng")
		assert.NotContains(t, prompt, "Bánh cuốn")
		assert.Contains(t, prompt, "**3 Món Ăn Đặc Sản Hà Nội:**")
	})

	t.Run("LLM failure lists references", func(t *testing.T) {
		llm := &scriptedLLM{err: errors.New("quota")}
		res, err := specialist.NewFood(deps(llm)).Handle(ctx, specialist.Request{
			Resolved: model.Resolved{Query: "ăn gì ở hà nội", Destination: "hà nội"},
		})
		require.NoError(t, err)
		assert.True(t, res.Degraded)
		assert.Contains(t, res.Text, "**2 Món Ăn Đặc Sản Hà Nội:**")
		assert.Contains(t, res.Text, "1. Phở Bát Đàn")
		assert.Contains(t, res.Text, "2. Bún chả Hàng Mành")
	})
}

func TestLocationWithoutReferences(t *testing.T) {
	d := deps(nil)
	d.Knowledge = &fakeKnowledge{}
	res, err := specialist.NewLocation(d).Handle(context.Background(), specialist.Request{
		Resolved: model.Resolved{Query: "đi đâu ở phú quốc", Destination: "phú quốc"},
	})
	require.NoError(t, err)
	assert.True(t, res.Degraded)
	assert.Contains(t, res.Text, "Phú Quốc")
}

func TestItinerary(t *testing.T) {
	ctx := context.Background()

	t.Run("needs destination", func(t *testing.T) {
		res, err := specialist.NewItinerary(deps(nil)).Handle(ctx, specialist.Request{Resolved: model.Resolved{Query: "lập lịch trình 3 ngày", TripLength: 3}})
		require.NoError(t, err)
		assert.True(t, res.Clarification)
		assert.Equal(t, itinerary.Clarification(), res.Text)
	})

	t.Run("without dates appends the notice", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{textResponse("Ngày 1: Hồ Gươm")}}
		d := deps(llm)
		kn := d.Knowledge.(*fakeKnowledge)
		res, err := specialist.NewItinerary(d).Handle(ctx, specialist.Request{
			Resolved: model.Resolved{Query: "lịch trình 3 ngày hà nội", Destination: "hà nội", TripLength: 3},
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.Text, "Ngày 1: Hồ Gươm"))
		assert.Contains(t, res.Text, itinerary.NoticeWithoutDates)

		require.Len(t, kn.searches, 2)
		assert.Equal(t, 5, kn.searches[0].Limit)
		assert.Equal(t, 6, kn.searches[1].Limit)
		assert.Contains(t, llm.lastPrompt(), "Không dùng thông tin thời tiết")
		assert.Empty(t, llm.requests[0].Tools)
	})

	t.Run("with dates runs the weather tool", func(t *testing.T) {
		tool := &echoTool{}
		llm := &scriptedLLM{responses: []*llmprovider.Response{
			{Content: llmprovider.Message{Role: llmprovider.RoleModel, Parts: []llmprovider.Part{{
				FunctionCall: &llmprovider.FunctionCall{ID: "c1", Name: "realtime_weather", Args: map[string]interface{}{"destination": "hà nội"}},
			}}}},
			textResponse("Lịch trình có thời tiết"),
		}}
		res, err := specialist.NewItinerary(deps(llm), tool).Handle(ctx, specialist.Request{
			Resolved: model.Resolved{
				Query: "lịch trình hà nội 2 ngày từ 20/10", Destination: "hà nội", TripLength: 2,
				StartDate: "2026-10-20", EndDate: "2026-10-21",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Lịch trình có thời tiết", res.Text)
		assert.Equal(t, 1, tool.calls)
		assert.Contains(t, llm.requests[0].Messages[0].Parts[0].Text, "2026-10-20, 2026-10-21")
		assert.NotEmpty(t, llm.requests[0].Tools)
	})

	t.Run("LLM failure renders the skeleton", func(t *testing.T) {
		res, err := specialist.NewItinerary(deps(nil)).Handle(ctx, specialist.Request{
			Resolved: model.Resolved{Query: "lịch trình 2 ngày hà nội", Destination: "hà nội", TripLength: 2},
		})
		require.NoError(t, err)
		assert.True(t, res.Degraded)
		assert.Contains(t, res.Text, specialist.FallbackResourcesPlace)
		assert.Contains(t, res.Text, "- Hồ Hoàn Kiếm")
		assert.Contains(t, res.Text, specialist.FallbackResourcesFood)
	})
}

func TestBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("live results", func(t *testing.T) {
		hotels := &fakeHotels{hotels: []serpapi.Hotel{
			{Name: "Sofitel Legend Metropole", OverallRating: 4.8, Link: "https://example.com/metropole", RatePerNight: serpapi.Rate{ExtractedLowest: 5000000}},
			{Name: "Nhà nghỉ", OverallRating: 2.1},
		}}
		d := deps(nil)
		d.Hotels = hotels
		res, err := specialist.NewBooking(d).Handle(ctx, specialist.Request{
			Resolved: model.Resolved{
				Destination: "hà nội", StartDate: "2026-10-20", EndDate: "2026-10-23",
				Preferences: model.Preferences{model.PrefBudget: serpapi.BudgetLuxury},
			},
			Adults:   3,
			Children: 1,
		})
		require.NoError(t, err)
		assert.False(t, res.Degraded)
		assert.Equal(t, 3, hotels.last.Adults)
		assert.Equal(t, 1, hotels.last.Children)
		assert.Equal(t, serpapi.BudgetLuxury, hotels.last.Budget)

		assert.Contains(t, res.Text, "20/10/2026")
		assert.Contains(t, res.Text, "23/10/2026 (3 đêm)")
		assert.Contains(t, res.Text, "3 người lớn, 1 trẻ em")
		assert.Contains(t, res.Text, "Cao cấp")
		assert.Contains(t, res.Text, "1. **Sofitel Legend Metropole**")
		assert.Contains(t, res.Text, "https://example.com/metropole")
		assert.NotContains(t, res.Text, "Nhà nghỉ")
	})

	t.Run("search failure uses curated list", func(t *testing.T) {
		d := deps(nil)
		d.Hotels = &fakeHotels{err: errors.New("timeout")}
		res, err := specialist.NewBooking(d).Handle(ctx, specialist.Request{Resolved: model.Resolved{Destination: "đà lạt"}})
		require.NoError(t, err)
		assert.True(t, res.Degraded)
		assert.Contains(t, res.Text, specialist.BookingStaticHeader)
		assert.Contains(t, res.Text, "25/10/2026")
		assert.Contains(t, res.Text, "2 người lớn")
		assert.Contains(t, res.Text, "Trung bình")
	})

	t.Run("no client is not degraded", func(t *testing.T) {
		res, err := specialist.NewBooking(deps(nil)).Handle(ctx, specialist.Request{Resolved: model.Resolved{Destination: "hà nội"}})
		require.NoError(t, err)
		assert.False(t, res.Degraded)
		assert.Contains(t, res.Text, specialist.BookingTips)
	})
}

func TestWeather(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, vn)
	client := &fakeWeather{
		current: &weather.Current{City: "Hanoi", Description: "mưa nhẹ", Temperature: 24, FeelsLike: 25, Humidity: 70, WindSpeed: 2},
		forecast: &weather.Forecast{City: "Hanoi", Entries: []weather.Entry{
			{Time: day.Add(9 * time.Hour), TempMin: 22, TempMax: 27, Description: "nắng", Humidity: 60, WindSpeed: 3},
			{Time: day.Add(15 * time.Hour), TempMin: 24, TempMax: 30, Description: "nắng", Humidity: 55, WindSpeed: 3},
		}},
	}

	t.Run("current", func(t *testing.T) {
		d := deps(nil)
		d.Weather = client
		res, err := specialist.NewWeather(d).Handle(ctx, specialist.Request{Resolved: model.Resolved{Destination: "hà nội"}})
		require.NoError(t, err)
		assert.Contains(t, res.Text, "24°C")
		assert.Contains(t, res.Text, "mưa nhẹ")
		assert.Contains(t, res.Text, weather.Recommend(*client.current))
	})

	t.Run("forecast day", func(t *testing.T) {
		d := deps(nil)
		d.Weather = client
		res, err := specialist.NewWeather(d).Handle(ctx, specialist.Request{Resolved: model.Resolved{Destination: "hà nội", StartDate: "2026-10-20"}})
		require.NoError(t, err)
		assert.Contains(t, res.Text, "20/10/2026: 22°C - 30°C")
	})

	t.Run("outside forecast range", func(t *testing.T) {
		d := deps(nil)
		d.Weather = client
		res, err := specialist.NewWeather(d).Handle(ctx, specialist.Request{Resolved: model.Resolved{Destination: "hà nội", StartDate: "2026-11-30"}})
		require.NoError(t, err)
		assert.Contains(t, res.Text, "30/11/2026")
		assert.Contains(t, res.Text, weather.Fallback())
	})

	t.Run("errors degrade to general advice", func(t *testing.T) {
		d := deps(nil)
		d.Weather = &fakeWeather{err: weather.ErrCityNotFound}
		res, err := specialist.NewWeather(d).Handle(ctx, specialist.Request{Resolved: model.Resolved{Destination: "atlantis"}})
		require.NoError(t, err)
		assert.True(t, res.Degraded)
		assert.Contains(t, res.Text, weather.Fallback())

		res, err = specialist.NewWeather(deps(nil)).Handle(ctx, specialist.Request{Resolved: model.Resolved{Destination: "hà nội"}})
		require.NoError(t, err)
		assert.True(t, res.Degraded)
	})
}

func TestDefault(t *testing.T) {
	ctx := context.Background()

	tests := map[string]string{
		"tỷ giá đô la hôm nay":         specialist.AnswerCurrency,
		"cần visa để vào Việt Nam không": specialist.AnswerVisa,
		"di chuyển giữa các tỉnh":       specialist.AnswerTransport,
		"khí hậu Việt Nam ra sao":       specialist.AnswerSeasons,
	}
	for query, want := range tests {
		res, err := specialist.NewDefault(deps(nil)).Handle(ctx, specialist.Request{Resolved: model.Resolved{Query: query}})
		require.NoError(t, err)
		assert.Equal(t, want, res.Text, query)
	}

	t.Run("LLM sees the destination of interest", func(t *testing.T) {
		llm := &scriptedLLM{responses: []*llmprovider.Response{textResponse("Người dân rất thân thiện")}}
		res, err := specialist.NewDefault(deps(llm)).Handle(ctx, specialist.Request{
			Resolved: model.Resolved{Query: "người dân ở đó thế nào", Destination: "hội an"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Người dân rất thân thiện", res.Text)
		assert.Contains(t, llm.lastPrompt(), "Người dùng đang quan tâm đến Hội An")
	})

	t.Run("defaulted destination is not mentioned", func(t *testing.T) {
		llm := &scriptedLLM{}
		_, err := specialist.NewDefault(deps(llm)).Handle(ctx, specialist.Request{
			Resolved: model.Resolved{Query: "văn hóa chào hỏi", Destination: "việt nam", DestinationDefaulted: true},
		})
		require.NoError(t, err)
		assert.NotContains(t, llm.lastPrompt(), "quan tâm đến")
	})

	t.Run("no LLM", func(t *testing.T) {
		res, err := specialist.NewDefault(deps(nil)).Handle(ctx, specialist.Request{Resolved: model.Resolved{Query: "văn hóa chào hỏi"}})
		require.NoError(t, err)
		assert.True(t, res.Degraded)
		assert.Equal(t, specialist.FallbackGeneral, res.Text)
	})
}
