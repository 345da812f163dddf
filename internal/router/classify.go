package router

import (
	"fmt"
	"strings"

	"travel-assistant/internal/lexicon"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/textnorm"
)

// ClassifyIntent maps an utterance to exactly one intent. It is pure and
// total.
func ClassifyIntent(utterance string) model.Intent {
	return classify(utterance).Intent
}

func classify(utterance string) Output {
	text := textnorm.Normalize(utterance)
	if text == "" {
		return Output{Intent: model.IntentOther, Confidence: ConfidenceDefault, Reasoning: ReasonEmpty}
	}

	for _, intent := range lexicon.PriorityIntents() {
		for _, re := range lexicon.PriorityPatterns(intent) {
			if re.MatchString(text) {
				return Output{
					Intent:     intent,
					Confidence: ConfidencePriority,
					Reasoning:  fmt.Sprintf(ReasonPriority, intent),
				}
			}
		}
	}

	best, bestScore := model.IntentOther, 0
	for _, intent := range model.AllIntents {
		if s := score(text, lexicon.IntentKeywords(intent)); s > bestScore {
			best, bestScore = intent, s
		}
	}
	if bestScore > 0 {
		return Output{
			Intent:     best,
			Confidence: keywordConfidence(bestScore),
			Reasoning:  fmt.Sprintf(ReasonKeyword, bestScore, best),
		}
	}

	if hasAny(text, lexicon.QuestionMarkers()) {
		return Output{Intent: model.IntentOther, Confidence: ConfidenceQuestion, Reasoning: ReasonQuestion}
	}
	return Output{Intent: model.IntentPlan, Confidence: ConfidenceDefault, Reasoning: ReasonDefault}
}

// score counts how many keywords occur in text.
func score(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if matches(text, kw) {
			n++
		}
	}
	return n
}

func hasAny(text string, markers []string) bool {
	for _, m := range markers {
		if matches(text, m) {
			return true
		}
	}
	return false
}

// matches uses word boundaries for real words and plain substring search
// for single-rune markers such as "?".
func matches(text, kw string) bool {
	if len([]rune(kw)) <= 1 {
		return kw != "" && strings.Contains(text, kw)
	}
	return textnorm.ContainsWord(text, kw)
}

func keywordConfidence(score int) int {
	c := ConfidenceKeywordMin + (score-1)*ConfidenceKeywordInc
	if c > ConfidenceKeywordMax {
		return ConfidenceKeywordMax
	}
	return c
}
