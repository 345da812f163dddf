// Package fuzzy scores string similarity on a 0–100 scale.
package fuzzy

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Ratio returns 100 * (1 - distance/maxLen) using Levenshtein distance over
// runes. Two empty strings score 100.
func Ratio(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return (100 * (maxLen - dist)) / maxLen
}

// Match is the best candidate found by ExtractOne.
type Match struct {
	Value string
	Score int
}

// ExtractOne returns the choice with the highest Ratio against query. The
// earliest choice wins ties. ok is false when choices is empty.
func ExtractOne(query string, choices []string) (Match, bool) {
	if len(choices) == 0 {
		return Match{}, false
	}
	best := Match{Score: -1}
	for _, c := range choices {
		if s := Ratio(query, c); s > best.Score {
			best = Match{Value: c, Score: s}
		}
	}
	return best, true
}
