package orchestrator

import (
	"fmt"
	"time"
)

var weekdayNames = [...]string{"Chủ nhật", "Thứ hai", "Thứ ba", "Thứ tư", "Thứ năm", "Thứ sáu", "Thứ bảy"}

// buildTimeContext creates the temporal context appended to every
// specialist prompt.
func buildTimeContext(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)

	toSaturday := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
	saturday := today.AddDate(0, 0, toSaturday)
	sunday := saturday.AddDate(0, 0, 1)

	toMonday := (int(time.Monday) - int(today.Weekday()) + 7) % 7
	if toMonday == 0 {
		toMonday = 7
	}
	nextMonday := today.AddDate(0, 0, toMonday)

	return fmt.Sprintf(
		TimeContextTemplate,
		today.Format(DateFormatISO),
		weekdayNames[today.Weekday()],
		tomorrow.Format(DateFormatISO),
		saturday.Format(DateFormatISO),
		sunday.Format(DateFormatISO),
		nextMonday.Format(DateFormatISO),
		tomorrow.Format(DateFormatISO),
		saturday.Format(DateFormatISO),
	)
}
