// Package resolver merges what the current utterance says with what the
// conversation already established.
package resolver

import (
	"fmt"
	"strings"
	"time"

	"travel-assistant/internal/model"
)

// DefaultTripLength applies when neither the utterance nor the context
// names a trip length.
const DefaultTripLength = 2

// Fallback destinations per specialist. Booking and weather need a real
// city.
const (
	DefaultDestinationGeneral = "Việt Nam"
	DefaultDestinationCity    = "hà nội"
)

// Defaults are the specialist-specific fallbacks used when a value is
// missing everywhere.
type Defaults struct {
	Destination string
	TripLength  int
}

// DefaultsFor returns the fallbacks for the specialist serving intent.
// Food, location and itinerary planning have no default destination.
func DefaultsFor(intent model.Intent) Defaults {
	d := Defaults{TripLength: DefaultTripLength}
	switch intent {
	case model.IntentOther:
		d.Destination = DefaultDestinationGeneral
	case model.IntentBook, model.IntentWeather:
		d.Destination = DefaultDestinationCity
	}
	return d
}

// Resolve builds the parameter set for a specialist. Extracted values win
// over context values, which win over defaults. The end date is always
// derived from the start date and the resolved trip length.
func Resolve(ent model.ExtractedEntities, intent model.Intent, bundle model.ContextBundle, d Defaults) model.Resolved {
	ctx := bundle.CurrentContext
	if d.TripLength <= 0 {
		d.TripLength = DefaultTripLength
	}

	r := model.Resolved{
		Intent:      intent,
		IsFollowUp:  bundle.IsFollowUp,
		HistoryText: HistoryText(bundle.RelevantHistory),
	}

	switch {
	case ent.Destination != "":
		r.Destination = ent.Destination
	case ctx.CurrentDestination != "":
		r.Destination = ctx.CurrentDestination
	default:
		r.Destination = d.Destination
		r.DestinationDefaulted = d.Destination != ""
	}

	switch {
	case ent.TripLength > 0:
		r.TripLength = ent.TripLength
	case ctx.CurrentTripLength > 0:
		r.TripLength = ctx.CurrentTripLength
	default:
		r.TripLength = d.TripLength
		r.TripLengthDefaulted = true
	}

	switch {
	case ent.TimeInfo != nil && ent.TimeInfo.StartDate != "":
		r.StartDate = ent.TimeInfo.StartDate
	case ctx.CurrentDates != nil && ctx.CurrentDates.StartDate != "":
		r.StartDate = ctx.CurrentDates.StartDate
	}
	if r.StartDate != "" {
		r.EndDate = EndDate(r.StartDate, r.TripLength)
	}

	r.Preferences = ctx.Preferences.Clone()
	for k, v := range ent.Preferences {
		if k == model.PrefBudget && v == model.BudgetMid && r.Preferences[k] != "" {
			continue
		}
		r.Preferences[k] = v
	}

	return r
}

// EndDate adds days to an ISO start date. An unparsable start yields "".
func EndDate(start string, days int) string {
	t, err := time.Parse(model.DateLayout, start)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, days).Format(model.DateLayout)
}

// HistoryText renders earlier interactions for a specialist prompt.
func HistoryText(items []model.Interaction) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(items))
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, it.UserQuery, it.Intent))
	}
	return strings.Join(lines, "\n")
}
