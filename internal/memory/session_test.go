package memory

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/model"
)

func fixedClock() func() time.Time {
	t := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestAddInteraction_NoClobber(t *testing.T) {
	s := NewSession().WithClock(fixedClock())

	s.AddInteraction("du lịch Hà Nội", model.IntentPlan, "ItineraryAgent", "ok",
		model.ExtractedInfo{Destination: "hà nội", TripLength: 3})
	s.AddInteraction("ăn gì ngon", model.IntentEat, "FoodAgent", "phở",
		model.ExtractedInfo{})

	assert.Equal(t, "hà nội", s.Context.CurrentDestination)
	assert.Equal(t, 3, s.Context.CurrentTripLength)
	assert.Equal(t, model.IntentEat, s.Context.LastIntent)
	assert.Equal(t, "ok", s.Context.LastResults["ItineraryAgent"])
	assert.Equal(t, "phở", s.Context.LastResults["FoodAgent"])
	assert.Len(t, s.History, 2)
	assert.NotEmpty(t, s.History[0].ID)
	assert.Equal(t, fixedClock()(), s.History[0].Timestamp)
}

func TestAddInteraction_OverwritesAndMerges(t *testing.T) {
	s := NewSession()

	s.AddInteraction("q1", model.IntentPlan, "ItineraryAgent", "r1", model.ExtractedInfo{
		Destination: "sa pa",
		Dates:       &model.DateRange{StartDate: "2025-01-16", EndDate: "2025-01-18"},
		Preferences: model.Preferences{model.PrefActivityType: "nature"},
	})
	s.AddInteraction("q2", model.IntentBook, "BookingAgent", "r2", model.ExtractedInfo{
		Destination: "đà lạt",
		Preferences: model.Preferences{model.PrefBudget: model.BudgetLuxury},
	})

	assert.Equal(t, "đà lạt", s.Context.CurrentDestination)
	require.NotNil(t, s.Context.CurrentDates)
	assert.Equal(t, "2025-01-16", s.Context.CurrentDates.StartDate)
	assert.Equal(t, model.Preferences{
		model.PrefActivityType: "nature",
		model.PrefBudget:       model.BudgetLuxury,
	}, s.Context.Preferences)
}

func TestAddInteraction_TruncatesResult(t *testing.T) {
	s := NewSession()
	long := strings.Repeat("ă", MaxResultRunes+10)

	it := s.AddInteraction("q", model.IntentOther, "DefaultAgent", long, model.ExtractedInfo{})

	assert.Equal(t, MaxResultRunes+len([]rune(ResultEllipsis)), len([]rune(it.ResultSummary)))
	assert.True(t, strings.HasSuffix(it.ResultSummary, ResultEllipsis))
	assert.Equal(t, it.ResultSummary, s.Context.LastResults["DefaultAgent"])
}

func TestRelevantContext_FollowUpScenario(t *testing.T) {
	s := NewSession()
	s.AddInteraction("lên lịch đi sapa 2 ngày", model.IntentPlan, "ItineraryAgent", "lịch trình",
		model.ExtractedInfo{Destination: "sa pa", TripLength: 2})

	bundle := s.RelevantContext("chuyến đi 3 ngày thì sao", model.IntentPlan)

	assert.Equal(t, "sa pa", bundle.CurrentContext.CurrentDestination)
	assert.True(t, bundle.IsFollowUp)
	assert.Len(t, bundle.RecentInteractions, 1)
	assert.Len(t, bundle.RelevantHistory, 1)
}

func TestRelevantContext_IsACopy(t *testing.T) {
	s := NewSession()
	s.AddInteraction("q", model.IntentPlan, "ItineraryAgent", "r", model.ExtractedInfo{
		Preferences: model.Preferences{model.PrefFoodType: "street"},
	})

	bundle := s.RelevantContext("q", model.IntentPlan)
	bundle.CurrentContext.Preferences[model.PrefFoodType] = "fine_dining"

	assert.Equal(t, "street", s.Context.Preferences[model.PrefFoodType])
}

func TestRelevantContext_Windows(t *testing.T) {
	s := NewSession()
	intents := []model.Intent{model.IntentEat, model.IntentPlan, model.IntentEat, model.IntentEat, model.IntentVisit}
	for i, in := range intents {
		s.AddInteraction(string(rune('a'+i)), in, "X", "r", model.ExtractedInfo{})
	}

	bundle := s.RelevantContext("thêm nữa", model.IntentEat)

	require.Len(t, bundle.RecentInteractions, RecentInteractionsLimit)
	assert.Equal(t, "c", bundle.RecentInteractions[0].UserQuery)
	assert.Equal(t, "e", bundle.RecentInteractions[2].UserQuery)

	require.Len(t, bundle.RelevantHistory, RelevantHistoryLimit)
	assert.Equal(t, "c", bundle.RelevantHistory[0].UserQuery)
	assert.Equal(t, "d", bundle.RelevantHistory[1].UserQuery)
}

func TestIsFollowUp(t *testing.T) {
	s := NewSession()
	assert.False(t, s.IsFollowUp("còn gì nữa", model.IntentEat), "no history")

	s.AddInteraction("ăn gì ở Hội An", model.IntentEat, "FoodAgent", "r",
		model.ExtractedInfo{Destination: "hội an"})

	assert.True(t, s.IsFollowUp("còn món nào khác", model.IntentEat))
	assert.True(t, s.IsFollowUp("what about dessert", model.IntentEat))
	assert.True(t, s.IsFollowUp("chỗ ở thì sao", model.IntentBook))
	assert.False(t, s.IsFollowUp("khách sạn ở Hội An", model.IntentBook))
}

func TestClearContextAndHistory(t *testing.T) {
	s := NewSession()
	s.AddInteraction("q", model.IntentPlan, "ItineraryAgent", "r", model.ExtractedInfo{Destination: "huế"})

	s.ClearContext()
	assert.Empty(t, s.Context.CurrentDestination)
	assert.NotNil(t, s.Context.Preferences)
	assert.Len(t, s.History, 1)

	s.ClearHistory()
	assert.Empty(t, s.History)
	assert.Equal(t, SummaryEmpty, s.Summary())
}

func TestSummary(t *testing.T) {
	s := NewSession()
	assert.Equal(t, SummaryEmpty, s.Summary())

	s.AddInteraction("q", model.IntentPlan, "ItineraryAgent", "r", model.ExtractedInfo{
		Destination: "đà lạt",
		TripLength:  3,
		Dates:       &model.DateRange{StartDate: "2025-01-18", EndDate: "2025-01-21"},
		Preferences: model.Preferences{model.PrefFoodType: "street", model.PrefActivityType: "nature"},
	})

	want := strings.Join([]string{
		"📝 Tóm tắt cuộc trò chuyện:",
		"🎯 Điểm đến hiện tại: đà lạt",
		"📅 Thời gian dự kiến: 3 ngày",
		"📆 Ngày khởi hành: 2025-01-18 → 2025-01-21",
		"🎨 Sở thích đã biết: activity_type, food_type",
		"🔄 Yêu cầu gần nhất: plan",
		"💬 Tổng số tương tác: 1",
	}, "\n")
	assert.Equal(t, want, s.Summary())

	s.ClearContext()
	assert.Contains(t, s.Summary(), "🎯 Điểm đến hiện tại: Chưa xác định")
	assert.Contains(t, s.Summary(), "🎨 Sở thích đã biết: Chưa có")
}

func TestSaveLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	ict := time.FixedZone("ICT", 7*3600)
	s := NewSession().WithClock(func() time.Time { return time.Date(2025, 1, 15, 17, 30, 0, 123456789, ict) })
	s.AddInteraction("lên lịch đi sapa 2 ngày", model.IntentPlan, "ItineraryAgent", "lịch trình", model.ExtractedInfo{
		Destination: "sa pa",
		TripLength:  2,
		Dates:       &model.DateRange{StartDate: "2025-01-16", EndDate: "2025-01-18"},
	})
	s.AddInteraction("ăn gì ở đó", model.IntentEat, "FoodAgent", "bún", model.ExtractedInfo{
		Preferences: model.Preferences{model.PrefFoodType: "traditional"},
	})
	require.NoError(t, s.SaveFile(path))

	loaded := NewSession()
	require.NoError(t, loaded.LoadFile(path))

	assert.Equal(t, s.Context, loaded.Context)
	assert.Equal(t, s.History, loaded.History)
	assert.Equal(t, time.UTC, loaded.History[0].Timestamp.Location())
}

func TestLoadFile_Missing(t *testing.T) {
	s := NewSession()
	s.AddInteraction("q", model.IntentPlan, "ItineraryAgent", "r", model.ExtractedInfo{Destination: "huế"})

	require.NoError(t, s.LoadFile(filepath.Join(t.TempDir(), "absent.json")))
	assert.Equal(t, "huế", s.Context.CurrentDestination)
}

func TestUnmarshal_FillsMissingMaps(t *testing.T) {
	s, err := Unmarshal([]byte(`{"conversation_history":[{"user_query":"hi","intent":"other","agent_used":"DefaultAgent","result":"x","extracted_info":{}}],"user_context":{"current_destination":"huế"}}`))
	require.NoError(t, err)

	assert.Equal(t, "huế", s.Context.CurrentDestination)
	assert.NotNil(t, s.Context.Preferences)
	assert.NotNil(t, s.Context.LastResults)
	assert.Equal(t, "x", s.History[0].ResultSummary)

	_, err = Unmarshal([]byte("{"))
	assert.Error(t, err)
}
