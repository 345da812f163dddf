package extractor

import (
	"regexp"
	"strings"

	"travel-assistant/pkg/textnorm"
)

// DetectGuests reads adult and child counts for a hotel search. Missing
// counts fall back to DefaultAdults and DefaultChildren.
func (e *Extractor) DetectGuests(utterance string) (adults, children int) {
	text := textnorm.Normalize(utterance)

	adults = DefaultAdults
	if n, ok := firstSubmatchInt(text, adultsRe); ok && n > 0 {
		adults = n
	}
	children = DefaultChildren
	if n, ok := firstSubmatchInt(text, childrenRe); ok {
		children = n
	}
	return adults, children
}

// DetectQuantity returns how many suggestions the user asked for. An
// explicit number between 1 and MaxQuantity wins; otherwise vague words
// such as "nhiều" or "vài" pick ManyQuantity or FewQuantity.
func (e *Extractor) DetectQuantity(utterance string) int {
	text := textnorm.Normalize(utterance)

	for _, m := range numberRe.FindAllString(text, -1) {
		if n := atoi(m); n >= 1 && n <= MaxQuantity {
			return n
		}
	}
	for _, w := range manyWords {
		if textnorm.ContainsWord(text, w) {
			return ManyQuantity
		}
	}
	for _, w := range fewWords {
		if textnorm.ContainsWord(text, w) {
			return FewQuantity
		}
	}
	return DefaultQuantity
}

func firstSubmatchInt(text string, patterns []*regexp.Regexp) (int, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return atoi(strings.TrimSpace(m[1])), true
		}
	}
	return 0, false
}
