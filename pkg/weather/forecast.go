package weather

import (
	"time"
)

// At returns the forecast entry covering t, i.e. the closest entry no more
// than one step away.
func (f *Forecast) At(t time.Time) (Entry, bool) {
	var (
		best  Entry
		found bool
		gap   time.Duration
	)
	for _, e := range f.Entries {
		d := e.Time.Sub(t)
		if d < 0 {
			d = -d
		}
		if d > forecastStep {
			continue
		}
		if !found || d < gap {
			best, gap, found = e, d, true
		}
	}
	return best, found
}

// Day aggregates the entries falling on date's calendar day in the
// forecast's timezone.
func (f *Forecast) Day(date time.Time) (DaySummary, bool) {
	var (
		sum   DaySummary
		found bool
	)
	for _, e := range f.Entries {
		y1, m1, d1 := e.Time.Date()
		y2, m2, d2 := date.In(e.Time.Location()).Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			continue
		}
		if !found {
			sum = DaySummary{
				Date:        time.Date(y1, m1, d1, 0, 0, 0, 0, e.Time.Location()),
				Description: e.Description,
				TempMin:     e.TempMin,
				TempMax:     e.TempMax,
				Humidity:    e.Humidity,
				WindSpeed:   e.WindSpeed,
			}
			found = true
			continue
		}
		sum.TempMin = min(sum.TempMin, e.TempMin)
		sum.TempMax = max(sum.TempMax, e.TempMax)
	}
	return sum, found
}
