package extractor

import "regexp"

// DefaultFuzzyThreshold is the similarity score (0–100) a fuzzy destination
// candidate must reach. Lower values let short function words such as
// "ở đó" match real destinations.
const DefaultFuzzyThreshold = 99

// DefaultTimezone anchors relative dates when no parser is configured.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// Fuzzy candidate limits.
const (
	maxNgram        = 3
	minCandidateLen = 3
)

// Guest and quantity defaults.
const (
	DefaultAdults   = 2
	DefaultChildren = 0

	DefaultQuantity = 2
	ManyQuantity    = 5
	FewQuantity     = 3
	MaxQuantity     = 20
)

// Relative time tags.
const (
	RelativeToday           = "today"
	RelativeTomorrow        = "tomorrow"
	RelativeDayAfter        = "day_after_tomorrow"
	RelativeInNDays         = "in_n_days"
	RelativeThisWeekend     = "this_weekend"
	RelativeNextWeek        = "next_week"
	RelativeNaturalLanguage = "natural_language"
)

// Date format tags.
const (
	FormatDMY             = "dd/mm/yyyy"
	FormatDM              = "dd/mm"
	FormatVietnameseDate  = "vietnamese_date"
	FormatRelative        = "relative"
	FormatNaturalLanguage = "natural_language"
)

var (
	tripDaysRe  = regexp.MustCompile(`(?i)(\d+)\s*(ngày|days?)`)
	tripWeeksRe = regexp.MustCompile(`(?i)(\d+)\s*(tuần|weeks?)`)
	nuaRe       = regexp.MustCompile(`^\s*nữa`)

	dmyRe      = regexp.MustCompile(`(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})`)
	vnDateRe   = regexp.MustCompile(`ngày\s+(\d{1,2})\s+tháng\s+(\d{1,2})(?:\s+năm\s+(\d{4}))?`)
	dmRe       = regexp.MustCompile(`(?:^|[^\d/])(\d{1,2})/(\d{1,2})(?:$|[^\d/])`)
	nDaysOutRe = regexp.MustCompile(`(\d+)\s+ngày\s+(nữa|tới)`)

	// "2/3 ngày" is a trip length range, not a date.
	durationRangeRe = regexp.MustCompile(`(?i)^\s*(ngày|đêm|tuần|days?|nights?|weeks?)`)

	adultsRe = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*người\s*lớn`),
		regexp.MustCompile(`(\d+)\s*người`),
		regexp.MustCompile(`(\d+)\s*khách`),
		regexp.MustCompile(`(?i)(\d+)\s*adults?`),
	}
	childrenRe = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*trẻ\s*em`),
		regexp.MustCompile(`(\d+)\s*(bé|cháu)`),
		regexp.MustCompile(`(?i)(\d+)\s*child(ren)?`),
		regexp.MustCompile(`(?i)(\d+)\s*kids?`),
	}
	numberRe = regexp.MustCompile(`\d+`)
)

// relativeMarkers are tried in order after the absolute patterns. The
// phrase is passed to the date parser verbatim.
var relativeMarkers = []struct {
	phrase string
	tag    string
}{
	{"ngày mai", RelativeTomorrow},
	{"ngày kia", RelativeDayAfter},
	{"ngày mốt", RelativeDayAfter},
	{"hôm nay", RelativeToday},
	{"cuối tuần này", RelativeThisWeekend},
	{"cuối tuần", RelativeThisWeekend},
	{"tuần sau", RelativeNextWeek},
	{"tuần tới", RelativeNextWeek},
}

// naturalDateWords are the English words a natural-language date match
// must contain. "may" is left out; it is a common unaccented Vietnamese word.
var naturalDateWords = map[string]struct{}{
	"tomorrow": {}, "weekend": {}, "week": {}, "month": {}, "days": {}, "fortnight": {},
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {}, "friday": {}, "saturday": {}, "sunday": {},
	"january": {}, "february": {}, "march": {}, "april": {}, "june": {}, "july": {},
	"august": {}, "september": {}, "october": {}, "november": {}, "december": {},
}

var manyWords = []string{"nhiều", "đa dạng", "khác nhau"}
var fewWords = []string{"ít", "vài", "một số"}
