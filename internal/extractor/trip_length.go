package extractor

import (
	"regexp"
	"strconv"

	"travel-assistant/internal/lexicon"
	"travel-assistant/pkg/textnorm"
)

// DetectTripLength returns the trip length in days. "3 ngày" and "2 weeks"
// are read directly; "hai ngày" goes through the number-word table. Date
// offsets such as "3 ngày nữa" are not trip lengths. There is no default.
func (e *Extractor) DetectTripLength(utterance string) (int, bool) {
	text := textnorm.Normalize(utterance)

	if n, ok := firstCount(text, tripDaysRe); ok {
		return n, true
	}
	if n, ok := firstCount(text, tripWeeksRe); ok {
		return n * 7, true
	}

	tokens := textnorm.Tokens(text)
	for i := 0; i+1 < len(tokens); i++ {
		n, ok := lexicon.NumberWord(tokens[i])
		if !ok || n <= 0 {
			continue
		}
		if i+2 < len(tokens) && tokens[i+2] == "nữa" {
			continue
		}
		switch tokens[i+1] {
		case "ngày":
			return n, true
		case "tuần":
			return n * 7, true
		}
	}

	return 0, false
}

func firstCount(text string, re *regexp.Regexp) (int, bool) {
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		if nuaRe.MatchString(text[loc[1]:]) {
			continue
		}
		n, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil || n <= 0 {
			continue
		}
		return n, true
	}
	return 0, false
}
