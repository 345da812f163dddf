package itinerary

import (
	"fmt"
	"strings"

	"travel-assistant/pkg/textnorm"
)

// Render formats the skeleton as the day-by-day text used in prompts and
// as a fallback answer.
func (p Plan) Render() string {
	if p.Scenario == NeedsDestination {
		return Clarification()
	}

	var b strings.Builder
	for i, d := range p.Days {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if d.Date != "" {
			fmt.Fprintf(&b, DayHeaderWithDate, d.Number, d.Date)
		} else {
			fmt.Fprintf(&b, DayHeader, d.Number)
		}
		if d.FreeAndEasy {
			b.WriteString(FreeAndEasySuffix)
		}
		for _, s := range d.Slots {
			b.WriteString("\n")
			b.WriteString(slotIcon(s))
			b.WriteString(" ")
			b.WriteString(string(s.Period))
			if s.Checkpoint != "" {
				fmt.Fprintf(&b, " (%s)", s.Checkpoint)
			}
			b.WriteString(": ")
			b.WriteString(s.Text)
		}
	}
	if p.Notice != "" {
		b.WriteString("\n\n")
		b.WriteString(p.Notice)
	}
	return b.String()
}

// Clarification asks the user for a destination and lists popular ones.
func Clarification() string {
	lines := make([]string, 0, len(popularDestinations))
	for _, d := range popularDestinations {
		lines = append(lines, "• "+textnorm.Title(d))
	}
	return fmt.Sprintf(ClarificationPrompt, strings.Join(lines, "\n"))
}

func slotIcon(s Slot) string {
	switch {
	case s.Kind == KindShopping:
		return IconShopping
	case s.Period == Morning:
		return IconMorning
	case s.Period == Noon:
		return IconNoon
	case s.Period == Afternoon:
		return IconAfternoon
	default:
		return IconEvening
	}
}
