package extractor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"travel-assistant/internal/lexicon"
	"travel-assistant/pkg/fuzzy"
	"travel-assistant/pkg/textnorm"
)

// DetectDestination returns the canonical destination named in utterance.
// A literal alias hit wins outright; otherwise word n-grams are scored
// against the folded alias list. ok is false when nothing clears the bar,
// which callers treat as "use conversational context".
func (e *Extractor) DetectDestination(utterance string) (string, bool) {
	text := textnorm.Normalize(utterance)
	if text == "" {
		return "", false
	}

	for _, d := range lexicon.Destinations() {
		if textnorm.ContainsWord(text, d.Canonical) {
			return d.Canonical, true
		}
		for _, alias := range d.Aliases {
			if textnorm.ContainsWord(text, alias) {
				return d.Canonical, true
			}
		}
	}

	return e.fuzzyDestination(textnorm.Tokens(text))
}

func (e *Extractor) fuzzyDestination(tokens []string) (string, bool) {
	aliases := lexicon.FoldedAliases()
	best := fuzzy.Match{Score: -1}

	for _, candidate := range candidates(tokens) {
		m, ok := fuzzy.ExtractOne(textnorm.Fold(candidate), aliases)
		if !ok || m.Score < e.fuzzyThreshold {
			continue
		}
		if m.Score > best.Score {
			best = m
		}
	}

	if best.Score < 0 {
		return "", false
	}
	return lexicon.CanonicalForFolded(best.Value)
}

// candidates returns the contiguous 1..maxNgram word windows that may name
// a place.
func candidates(tokens []string) []string {
	var out []string
	for i := range tokens {
		for n := 1; n <= maxNgram && i+n <= len(tokens); n++ {
			window := tokens[i : i+n]
			if hasStopword(window) {
				break
			}
			c := strings.Join(window, " ")
			if isDigits(c) || utf8.RuneCountInString(c) < minCandidateLen || inStopPhrase(c) {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

func hasStopword(words []string) bool {
	for _, w := range words {
		if lexicon.IsStopword(w) {
			return true
		}
	}
	return false
}

func inStopPhrase(c string) bool {
	for _, p := range lexicon.StopPhrases() {
		if strings.Contains(p, c) || strings.Contains(c, p) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != ' ' {
			return false
		}
	}
	return s != ""
}
