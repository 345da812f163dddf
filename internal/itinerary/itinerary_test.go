package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/model"
)

func TestQuantities(t *testing.T) {
	tests := []struct {
		days     int
		food     int
		location int
	}{
		{-1, 2, 2},
		{0, 2, 2},
		{1, 2, 2},
		{2, 4, 3},
		{3, 6, 5},
		{4, 8, 6},
		{5, 10, 8},
		{7, 14, 12},
	}

	for _, tt := range tests {
		got := Quantities(tt.days)
		assert.Equal(t, tt.food, got.FoodItems, "food for %d days", tt.days)
		assert.Equal(t, tt.location, got.LocationItems, "locations for %d days", tt.days)
	}
}

func TestSelectScenario(t *testing.T) {
	assert.Equal(t, NeedsDestination, SelectScenario(model.Resolved{TripLength: 2}))
	assert.Equal(t, PlanningWithoutTime, SelectScenario(model.Resolved{Destination: "sa pa", TripLength: 2}))
	assert.Equal(t, PlanningWithTime, SelectScenario(model.Resolved{Destination: "sa pa", TripLength: 2, StartDate: "2025-01-16"}))
}

func TestBuildSkeleton_NeedsDestination(t *testing.T) {
	p := BuildSkeleton(model.Resolved{TripLength: 3})

	assert.Equal(t, StateNeedsDestination, p.State)
	assert.Empty(t, p.Days)
	assert.Equal(t, Clarification(), p.Render())
	assert.Contains(t, p.Render(), "• Hồ Chí Minh")
}

func TestBuildSkeleton_WithoutTime(t *testing.T) {
	p := BuildSkeleton(model.Resolved{Destination: "hà nội", TripLength: 3})

	assert.Equal(t, PlanningWithoutTime, p.Scenario)
	assert.Equal(t, StatePlanningWithoutTime, p.State)
	assert.Equal(t, NoticeWithoutDates, p.Notice)
	assert.Equal(t, Resources{FoodItems: 6, LocationItems: 5}, p.Resources)
	require.Len(t, p.Days, 3)

	last := p.Days[2]
	assert.False(t, last.FreeAndEasy)
	assert.Equal(t, KindShopping, last.Slots[2].Kind)
	assert.Equal(t, KindActivity, last.Slots[0].Kind)
	assert.Contains(t, p.Days[0].Slots[3].Text, EveningHanoi)
	assert.Empty(t, p.Days[0].Slots[0].Checkpoint)

	out := p.Render()
	assert.True(t, strings.HasPrefix(out, "📅 **NGÀY 1**\n🌅 Sáng: "))
	assert.Contains(t, out, "🛍️ Chiều: Mua sắm quà lưu niệm")
	assert.Contains(t, out, "ℹ️ **Lưu ý:** Bạn chưa cung cấp ngày cụ thể cho chuyến đi.")
}

func TestBuildSkeleton_OneDayHasNoShopping(t *testing.T) {
	p := BuildSkeleton(model.Resolved{Destination: "huế", TripLength: 1})

	require.Len(t, p.Days, 1)
	assert.Equal(t, KindActivity, p.Days[0].Slots[2].Kind)
	assert.Contains(t, p.Days[0].Slots[3].Text, EveningGeneric)
}

func TestBuildSkeleton_LongTripFreeAndEasy(t *testing.T) {
	p := BuildSkeleton(model.Resolved{Destination: "sa pa", TripLength: 4})

	require.Len(t, p.Days, 4)
	last := p.Days[3]
	assert.True(t, last.FreeAndEasy)
	assert.Equal(t, KindFree, last.Slots[0].Kind)
	assert.Equal(t, KindShopping, last.Slots[2].Kind)
	assert.Equal(t, KindActivity, p.Days[2].Slots[2].Kind)
	assert.Contains(t, p.Render(), "📅 **NGÀY 4 - Free & Easy Day**")
}

func TestBuildSkeleton_WithTime(t *testing.T) {
	p := BuildSkeleton(model.Resolved{
		Destination: "hội an",
		TripLength:  2,
		StartDate:   "2025-01-31",
		EndDate:     "2025-02-02",
	})

	assert.Equal(t, PlanningWithTime, p.Scenario)
	assert.Empty(t, p.Notice)
	require.Len(t, p.Days, 2)
	assert.Equal(t, "2025-01-31", p.Days[0].Date)
	assert.Equal(t, "2025-02-01", p.Days[1].Date)

	var hours []string
	for _, s := range p.Days[1].Slots {
		hours = append(hours, s.Checkpoint)
		assert.Equal(t, "2025-02-01", s.Date)
	}
	assert.Equal(t, []string{"08:00", "12:00", "16:00", "20:00"}, hours)

	out := p.Render()
	assert.Contains(t, out, "📅 **NGÀY 2 (2025-02-01)**")
	assert.Contains(t, out, "🌅 Sáng (08:00): ")
	assert.Contains(t, out, EveningHoiAn)

	p.Complete()
	assert.Equal(t, StateDone, p.State)
}

func TestBuildSkeleton_BadDateFallsBackToDateless(t *testing.T) {
	p := BuildSkeleton(model.Resolved{Destination: "huế", TripLength: 2, StartDate: "someday"})

	assert.Equal(t, PlanningWithoutTime, p.Scenario)
	assert.Equal(t, NoticeWithoutDates, p.Notice)
	assert.Empty(t, p.Days[0].Date)
}
