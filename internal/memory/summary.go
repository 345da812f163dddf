package memory

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Summary renders the conversation state for display.
func (s *Session) Summary() string {
	if len(s.History) == 0 {
		return SummaryEmpty
	}

	c := s.Context
	dest := orDefault(c.CurrentDestination, SummaryUnknown)

	tripLength := SummaryUnknown
	if c.CurrentTripLength > 0 {
		tripLength = strconv.Itoa(c.CurrentTripLength)
	}

	dates := SummaryUnknown
	if c.CurrentDates != nil && c.CurrentDates.StartDate != "" {
		dates = c.CurrentDates.StartDate
		if c.CurrentDates.EndDate != "" {
			dates += " → " + c.CurrentDates.EndDate
		}
	}

	prefs := SummaryNone
	if len(c.Preferences) > 0 {
		keys := make([]string, 0, len(c.Preferences))
		for k := range c.Preferences {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		prefs = strings.Join(keys, ", ")
	}

	lines := []string{
		SummaryHeader,
		fmt.Sprintf(SummaryDestination, dest),
		fmt.Sprintf(SummaryTripLength, tripLength),
		fmt.Sprintf(SummaryDates, dates),
		fmt.Sprintf(SummaryPreferences, prefs),
		fmt.Sprintf(SummaryLastIntent, orDefault(string(c.LastIntent), SummaryNone)),
		fmt.Sprintf(SummaryInteractions, len(s.History)),
	}
	return strings.Join(lines, "\n")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
