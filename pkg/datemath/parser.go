package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	daysLaterRe  = regexp.MustCompile(`^(\d+) (ngày|tuần|tháng) (nữa|tới|sau)$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
	"thứ hai":   time.Monday,
	"thứ ba":    time.Tuesday,
	"thứ tư":    time.Wednesday,
	"thứ năm":   time.Thursday,
	"thứ sáu":   time.Friday,
	"thứ bảy":   time.Saturday,
	"chủ nhật":  time.Sunday,
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time at the
// start of the target day. English and Vietnamese phrasings are accepted.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today", "hôm nay":
		return p.startOfDay(baseTime), nil
	case "tomorrow", "ngày mai", "mai":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday", "hôm qua":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "ngày kia", "ngày mốt", "day after tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "this weekend", "cuối tuần này", "cuối tuần":
		return p.NextWeekday(time.Saturday, baseTime, false), nil
	case "next week", "tuần sau", "tuần tới":
		return p.NextWeekday(time.Monday, baseTime, false), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "N ngày nữa", "2 tuần tới"
	if m := daysLaterRe.FindStringSubmatch(relative); m != nil {
		amount, _ := strconv.Atoi(m[1])
		return p.shift(baseTime, amount, m[2]), nil
	}

	// Handle "next <weekday>" and "<thứ x> tuần sau"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(strings.TrimPrefix(relative, "next "), baseTime)
	}
	for _, suffix := range []string{" tuần sau", " tuần tới"} {
		if strings.HasSuffix(relative, suffix) {
			return p.parseWeekdayNextWeek(strings.TrimSuffix(relative, suffix), baseTime)
		}
	}
	if strings.HasSuffix(relative, " này") {
		return p.parseNextWeekday(strings.TrimSuffix(relative, " này"), baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	return p.shift(baseTime, amount, matches[2]), nil
}

func (p *Parser) shift(baseTime time.Time, amount int, unit string) time.Time {
	switch {
	case strings.HasPrefix(unit, "week"), unit == "tuần":
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7))
	case strings.HasPrefix(unit, "month"), unit == "tháng":
		return p.startOfDay(baseTime.AddDate(0, amount, 0))
	default:
		return p.startOfDay(baseTime.AddDate(0, 0, amount))
	}
}

// parseNextWeekday handles "monday", "thứ sáu" and similar day names.
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return p.NextWeekday(targetWeekday, baseTime, false), nil
}

// parseWeekdayNextWeek handles "thứ sáu tuần sau": the named day inside the
// Monday-to-Sunday week that follows the current one.
func (p *Parser) parseWeekdayNextWeek(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}
	monday := p.NextWeekday(time.Monday, baseTime, false)
	offset := (int(targetWeekday) - int(time.Monday) + 7) % 7
	return monday.AddDate(0, 0, offset), nil
}

// NextWeekday returns the start of the next day falling on target. When
// includeToday is set and baseTime already falls on target, that day is
// returned instead of the one a week later.
func (p *Parser) NextWeekday(target time.Weekday, baseTime time.Time, includeToday bool) time.Time {
	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && !includeToday) {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil))
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
