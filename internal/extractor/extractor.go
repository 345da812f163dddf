// Package extractor pulls destinations, trip lengths, dates and preference
// tags out of free-form Vietnamese and English travel requests.
package extractor

import "travel-assistant/internal/model"

// Extract runs every detector over utterance. Each field is filled
// independently.
func (e *Extractor) Extract(utterance string) model.ExtractedEntities {
	var out model.ExtractedEntities

	if d, ok := e.DetectDestination(utterance); ok {
		out.Destination = d
	}
	if n, ok := e.DetectTripLength(utterance); ok {
		out.TripLength = n
	}
	if ti, ok := e.DetectTime(utterance); ok {
		out.TimeInfo = ti
	}
	out.Preferences = e.ExtractPreferences(utterance)

	return out
}

// Info converts extracted entities into the memory record. The implicit
// mid_range budget is left out so it never overwrites a remembered tier.
func Info(ent model.ExtractedEntities) model.ExtractedInfo {
	info := model.ExtractedInfo{
		Destination: ent.Destination,
		TripLength:  ent.TripLength,
	}
	if ent.TimeInfo != nil && ent.TimeInfo.StartDate != "" {
		info.Dates = &model.DateRange{StartDate: ent.TimeInfo.StartDate}
	}
	prefs := ent.Preferences.Clone()
	if prefs[model.PrefBudget] == model.BudgetMid {
		delete(prefs, model.PrefBudget)
	}
	if len(prefs) > 0 {
		info.Preferences = prefs
	}
	return info
}
