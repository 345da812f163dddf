package specialist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/weather"
)

// Weather reports live conditions, or the forecast for a resolved date.
type Weather struct {
	d Deps
}

// NewWeather creates the weather specialist.
func NewWeather(d Deps) *Weather {
	return &Weather{d: d.normalize()}
}

func (s *Weather) Name() string { return NameWeather }

func (s *Weather) Handle(ctx context.Context, req Request) (Result, error) {
	r := req.Resolved
	if s.d.Weather == nil {
		return Result{Text: fmt.Sprintf(WeatherAdvice, weather.Fallback()), Degraded: true}, nil
	}

	var (
		text string
		err  error
	)
	if r.HasDates() {
		text, err = s.forecast(ctx, r)
	} else {
		text, err = s.current(ctx, r.Destination)
	}
	if err != nil {
		s.d.Logger.Warnf(ctx, "%s: %s: %v", LogPrefixWeather, r.Destination, err)
		return Result{Text: fmt.Sprintf(WeatherAdvice, weather.Fallback()), Degraded: true}, nil
	}
	return Result{Text: text}, nil
}

func (s *Weather) current(ctx context.Context, city string) (string, error) {
	cur, err := s.d.Weather.Current(ctx, city)
	if err != nil {
		return "", err
	}
	lines := []string{
		fmt.Sprintf(WeatherCurrentLine, cur.Temperature, cur.FeelsLike, cur.Description, cur.Humidity, cur.WindSpeed),
		fmt.Sprintf(WeatherAdvice, weather.Recommend(*cur)),
	}
	return strings.Join(lines, "\n\n"), nil
}

func (s *Weather) forecast(ctx context.Context, r model.Resolved) (string, error) {
	date, err := time.ParseInLocation(model.DateLayout, r.StartDate, s.d.Location)
	if err != nil {
		return s.current(ctx, r.Destination)
	}
	fc, err := s.d.Weather.Forecast(ctx, r.Destination)
	if err != nil {
		return "", err
	}
	day, ok := fc.Day(date)
	if !ok {
		lines := []string{
			fmt.Sprintf(WeatherNoForecast, date.Format(displayDate)),
			fmt.Sprintf(WeatherAdvice, weather.Fallback()),
		}
		return strings.Join(lines, "\n\n"), nil
	}
	lines := []string{
		fmt.Sprintf(WeatherForecastLine, date.Format(displayDate), day.TempMin, day.TempMax, day.Description, day.Humidity, day.WindSpeed),
		fmt.Sprintf(WeatherAdvice, weather.ForecastRecommend(day)),
	}
	return strings.Join(lines, "\n\n"), nil
}
