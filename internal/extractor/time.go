package extractor

import (
	"strconv"
	"time"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/textnorm"
)

// DetectTime finds the trip start date. Absolute dates are tried before
// relative markers and the first hit wins. When nothing matches, the
// English natural-language parser gets a chance, but only a match naming a
// full English date word and falling after today is accepted.
func (e *Extractor) DetectTime(utterance string) (*model.TimeInfo, bool) {
	text := textnorm.Normalize(utterance)
	if text == "" {
		return nil, false
	}
	now := e.now().In(e.dates.Location())
	today := e.dates.StartOfDay(now)

	if m := dmyRe.FindStringSubmatch(text); m != nil {
		if d, ok := e.date(atoi(m[3]), atoi(m[2]), atoi(m[1])); ok {
			return absolute(d, FormatDMY), true
		}
	}

	if m := vnDateRe.FindStringSubmatch(text); m != nil {
		if d, ok := e.dateNoYear(m[3], atoi(m[2]), atoi(m[1]), today); ok {
			return absolute(d, FormatVietnameseDate), true
		}
	}

	if m := dmRe.FindStringSubmatchIndex(text); m != nil && !durationRangeRe.MatchString(text[m[5]:]) {
		if d, ok := e.dateNoYear("", atoi(text[m[4]:m[5]]), atoi(text[m[2]:m[3]]), today); ok {
			return absolute(d, FormatDM), true
		}
	}

	if m := nDaysOutRe.FindStringSubmatch(text); m != nil {
		if n := atoi(m[1]); n > 0 {
			return relative(today.AddDate(0, 0, n), RelativeInNDays), true
		}
	}

	for _, marker := range relativeMarkers {
		if !textnorm.ContainsWord(text, marker.phrase) {
			continue
		}
		d, err := e.dates.Parse(marker.phrase, now)
		if err != nil {
			continue
		}
		return relative(d, marker.tag), true
	}

	r, err := e.natural.Parse(text, now)
	if err != nil || r == nil || !hasNaturalDateWord(r.Text) {
		return nil, false
	}
	d := e.dates.StartOfDay(r.Time)
	if !d.After(today) {
		return nil, false
	}
	return &model.TimeInfo{
		HasDates:     true,
		StartDate:    d.Format(model.DateLayout),
		RelativeTime: RelativeNaturalLanguage,
		DateFormat:   FormatNaturalLanguage,
	}, true
}

// date builds a calendar date and rejects overflow such as 31/02.
func (e *Extractor) date(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, e.dates.Location())
	if d.Day() != day || int(d.Month()) != month {
		return time.Time{}, false
	}
	return d, true
}

// dateNoYear uses the explicit year when given. Otherwise the date is
// placed in the current year, or the next one when it has already passed.
func (e *Extractor) dateNoYear(year string, month, day int, today time.Time) (time.Time, bool) {
	if year != "" {
		return e.date(atoi(year), month, day)
	}
	d, ok := e.date(today.Year(), month, day)
	if !ok {
		return time.Time{}, false
	}
	if d.Before(today) {
		return e.date(today.Year()+1, month, day)
	}
	return d, true
}

func absolute(d time.Time, format string) *model.TimeInfo {
	return &model.TimeInfo{
		HasDates:   true,
		StartDate:  d.Format(model.DateLayout),
		DateFormat: format,
	}
}

func relative(d time.Time, tag string) *model.TimeInfo {
	return &model.TimeInfo{
		HasDates:     true,
		StartDate:    d.Format(model.DateLayout),
		RelativeTime: tag,
		DateFormat:   FormatRelative,
	}
}

// hasNaturalDateWord rejects matches built only from abbreviations such as
// "mon" or "sat", which are also unaccented Vietnamese words.
func hasNaturalDateWord(matched string) bool {
	for _, tok := range textnorm.Tokens(matched) {
		if _, ok := naturalDateWords[tok]; ok {
			return true
		}
	}
	return false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
