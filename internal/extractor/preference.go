package extractor

import (
	"travel-assistant/internal/lexicon"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/textnorm"
)

// ExtractPreferences tags the utterance per preference category. Activity
// and food are omitted when no keyword matches; budget falls back to
// mid_range.
func (e *Extractor) ExtractPreferences(utterance string) model.Preferences {
	text := textnorm.Normalize(utterance)
	prefs := model.Preferences{}

	if tag, ok := firstTag(text, lexicon.ActivityTags()); ok {
		prefs[model.PrefActivityType] = tag
	}
	if tag, ok := firstTag(text, lexicon.FoodTags()); ok {
		prefs[model.PrefFoodType] = tag
	}
	if tag, ok := firstTag(text, lexicon.BudgetTags()); ok {
		prefs[model.PrefBudget] = tag
	} else {
		prefs[model.PrefBudget] = model.BudgetMid
	}

	return prefs
}

func firstTag(text string, tags []lexicon.PreferenceTag) (string, bool) {
	for _, t := range tags {
		for _, kw := range t.Keywords {
			if textnorm.ContainsWord(text, kw) {
				return t.Tag, true
			}
		}
	}
	return "", false
}
