// Package lexicon holds the static word tables used by entity extraction
// and intent classification. Every table is built once at init and never
// mutated afterwards.
package lexicon

import (
	"fmt"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/textnorm"
)

var (
	expanded     []Destination
	canonicalSet map[string]struct{}
	foldedAlias  map[string]string
	foldedOrder  []string
	stopSet      map[string]struct{}
)

func init() {
	canonicalSet = make(map[string]struct{}, len(destinations))
	foldedAlias = make(map[string]string)
	expanded = make([]Destination, 0, len(destinations))

	for _, d := range destinations {
		seen := map[string]struct{}{d.Canonical: {}}
		aliases := make([]string, 0, len(d.Aliases)*2)
		add := func(s string) {
			s = textnorm.Normalize(s)
			if _, ok := seen[s]; ok || s == "" {
				return
			}
			seen[s] = struct{}{}
			aliases = append(aliases, s)
		}
		for _, a := range d.Aliases {
			add(a)
		}
		add(textnorm.Fold(d.Canonical))
		for _, a := range d.Aliases {
			add(textnorm.Fold(a))
		}

		expanded = append(expanded, Destination{Canonical: d.Canonical, Aliases: aliases})
		canonicalSet[d.Canonical] = struct{}{}

		for _, name := range append([]string{d.Canonical}, aliases...) {
			f := textnorm.Fold(name)
			if _, ok := foldedAlias[f]; !ok {
				foldedAlias[f] = d.Canonical
				foldedOrder = append(foldedOrder, f)
			}
		}
	}

	stopSet = make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stopSet[w] = struct{}{}
	}
	for w := range numberWords {
		stopSet[w] = struct{}{}
	}

	for _, intent := range model.AllIntents {
		if _, ok := intentKeywords[intent]; !ok {
			panic(fmt.Sprintf("lexicon: intent %q has no keyword table", intent))
		}
	}
	for intent := range priorityPatterns {
		if !intent.IsValid() {
			panic(fmt.Sprintf("lexicon: priority pattern for unknown intent %q", intent))
		}
	}
}

// FoldedAliases returns every accent-folded spelling known to the lexicon,
// in table order.
func FoldedAliases() []string {
	out := make([]string, len(foldedOrder))
	copy(out, foldedOrder)
	return out
}

// CanonicalForFolded maps an accent-folded alias back to its canonical
// destination name.
func CanonicalForFolded(folded string) (string, bool) {
	c, ok := foldedAlias[folded]
	return c, ok
}

// IsStopword reports whether w is a generic or grammatical word that can
// never be part of a destination candidate.
func IsStopword(w string) bool {
	_, ok := stopSet[w]
	return ok
}

// StopPhrases returns the multi-word generic expressions. A candidate that
// is contained in one of them is discarded.
func StopPhrases() []string {
	return stopPhrases
}

// NumberWord returns the value of a Vietnamese number word.
func NumberWord(w string) (int, bool) {
	n, ok := numberWords[w]
	return n, ok
}

// IntentKeywords returns the keyword list for intent.
func IntentKeywords(intent model.Intent) []string {
	return intentKeywords[intent]
}

// PriorityIntents returns the intents that have high-precision patterns, in
// the order they must be checked.
func PriorityIntents() []model.Intent {
	return priorityOrder
}

// QuestionMarkers returns the interrogative markers used by the zero-score
// fallback.
func QuestionMarkers() []string {
	return questionMarkers
}

// FollowUpMarkers returns the discourse markers that signal a continuation
// of the previous turn.
func FollowUpMarkers() []string {
	return followUpMarkers
}
