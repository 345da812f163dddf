// Package itinerary sizes trips and lays out the day-by-day skeleton that
// the planner fills in.
package itinerary

import (
	"time"

	"travel-assistant/internal/model"
)

// Quantities returns how many dishes and places a d-day trip needs: two
// meals a day, two activities a day minus the slots the last day gives up
// to shopping or free time. d <= 0 counts as one day.
func Quantities(d int) Resources {
	if d <= 0 {
		d = 1
	}
	r := Resources{FoodItems: 2 * d}
	switch {
	case d == 1:
		r.LocationItems = 2
	case d <= 3:
		r.LocationItems = 2*d - 1
	default:
		r.LocationItems = 2*d - 2
	}
	return r
}

// SelectScenario picks the planning branch for r.
func SelectScenario(r model.Resolved) Scenario {
	switch {
	case r.Destination == "":
		return NeedsDestination
	case r.HasDates():
		return PlanningWithTime
	default:
		return PlanningWithoutTime
	}
}

// EveningHint returns the evening activity suggestion for destination.
func EveningHint(destination string) string {
	if h, ok := eveningHints[destination]; ok {
		return h
	}
	return EveningGeneric
}

// BuildSkeleton lays out the plan for r. A plan without a destination has
// no days.
func BuildSkeleton(r model.Resolved) Plan {
	scenario := SelectScenario(r)
	p := Plan{
		Scenario:    scenario,
		State:       State(scenario),
		Destination: r.Destination,
		TripLength:  r.TripLength,
	}
	if scenario == NeedsDestination {
		return p
	}

	if p.TripLength <= 0 {
		p.TripLength = 1
	}
	p.Resources = Quantities(p.TripLength)

	var start time.Time
	if scenario == PlanningWithTime {
		if t, err := time.Parse(model.DateLayout, r.StartDate); err == nil {
			start = t
			p.StartDate = r.StartDate
			p.EndDate = r.EndDate
		} else {
			p.Scenario, p.State = PlanningWithoutTime, StatePlanningWithoutTime
		}
	}
	if p.Scenario == PlanningWithoutTime {
		p.Notice = NoticeWithoutDates
	}

	hint := EveningHint(r.Destination)
	p.Days = make([]Day, 0, p.TripLength)
	for n := 1; n <= p.TripLength; n++ {
		day := buildDay(n, p.TripLength, hint)
		if !start.IsZero() {
			day.Date = start.AddDate(0, 0, n-1).Format(model.DateLayout)
			for i := range day.Slots {
				day.Slots[i].Checkpoint = checkpoints[day.Slots[i].Period]
				day.Slots[i].Date = day.Date
			}
		}
		p.Days = append(p.Days, day)
	}

	return p
}

func buildDay(n, total int, hint string) Day {
	last := n == total
	day := Day{
		Number: n,
		Slots: []Slot{
			{Period: Morning, Kind: KindActivity, Text: TextActivityMorning},
			{Period: Noon, Kind: KindMeal, Text: TextLunch},
			{Period: Afternoon, Kind: KindActivity, Text: TextActivityAfternoon},
			{Period: Evening, Kind: KindMeal, Text: TextDinner + " + " + hint},
		},
	}

	switch {
	case last && total >= 4:
		day.FreeAndEasy = true
		day.Slots[0] = Slot{Period: Morning, Kind: KindFree, Text: TextFreeMorning}
		day.Slots[2] = Slot{Period: Afternoon, Kind: KindShopping, Text: TextShopping}
		day.Slots[3].Text = TextDinner
	case last && total >= 2:
		day.Slots[2] = Slot{Period: Afternoon, Kind: KindShopping, Text: TextShopping}
	}
	return day
}

// Complete marks the plan as delivered.
func (p *Plan) Complete() {
	p.State = StateDone
}
