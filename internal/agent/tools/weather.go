package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travel-assistant/internal/agent"
	pkgLog "travel-assistant/pkg/log"
	"travel-assistant/pkg/weather"
)

// RealtimeWeatherTool reports current weather, or the forecast for a date
// and optional hour.
type RealtimeWeatherTool struct {
	client weather.IWeather
	loc    *time.Location
	l      pkgLog.Logger
}

// NewRealtimeWeatherTool creates the realtime_weather tool. Dates are read
// in loc.
func NewRealtimeWeatherTool(client weather.IWeather, loc *time.Location, l pkgLog.Logger) agent.Tool {
	if loc == nil {
		loc = time.UTC
	}
	return &RealtimeWeatherTool{client: client, loc: loc, l: l}
}

func (t *RealtimeWeatherTool) Name() string {
	return NameRealtimeWeather
}

func (t *RealtimeWeatherTool) Description() string {
	return "Lấy thời tiết thực tế của một thành phố Việt Nam. Không có date: thời tiết hiện tại. Có date (YYYY-MM-DD) và hour (0-23): dự báo cho khung giờ đó, tối đa 5 ngày tới."
}

func (t *RealtimeWeatherTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"destination": map[string]interface{}{
				"type":        "string",
				"description": "Tên thành phố, ví dụ 'hà nội', 'đà lạt'",
			},
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Ngày cần dự báo, định dạng YYYY-MM-DD",
			},
			"hour": map[string]interface{}{
				"type":        "integer",
				"description": "Giờ trong ngày (8, 12, 16, 20)",
			},
		},
		"required": []string{"destination"},
	}
}

type RealtimeWeatherInput struct {
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Hour        *int   `json:"hour"`
}

type RealtimeWeatherOutput struct {
	Destination    string  `json:"destination"`
	Date           string  `json:"date,omitempty"`
	Time           string  `json:"time,omitempty"`
	Available      bool    `json:"available"`
	Description    string  `json:"description,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
	TempMin        float64 `json:"temp_min,omitempty"`
	TempMax        float64 `json:"temp_max,omitempty"`
	Humidity       int     `json:"humidity,omitempty"`
	WindSpeed      float64 `json:"wind_speed,omitempty"`
	Recommendation string  `json:"recommendation"`
}

func (t *RealtimeWeatherTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params RealtimeWeatherInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}
	if params.Destination == "" {
		return nil, fmt.Errorf("destination parameter is required")
	}

	t.l.Infof(ctx, "%s: destination=%q date=%q", NameRealtimeWeather, params.Destination, params.Date)

	if params.Date == "" {
		cur, err := t.client.Current(ctx, params.Destination)
		if err != nil {
			return nil, fmt.Errorf("current weather: %w", err)
		}
		return RealtimeWeatherOutput{
			Destination:    params.Destination,
			Time:           cur.ObservedAt.Format("2006-01-02 15:04"),
			Available:      true,
			Description:    cur.Description,
			Temperature:    cur.Temperature,
			Humidity:       cur.Humidity,
			WindSpeed:      cur.WindSpeed,
			Recommendation: weather.Recommend(*cur),
		}, nil
	}

	day, err := time.ParseInLocation(dateLayout, params.Date, t.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	forecast, err := t.client.Forecast(ctx, params.Destination)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	out := RealtimeWeatherOutput{Destination: params.Destination, Date: params.Date}
	if params.Hour != nil {
		at := day.Add(time.Duration(*params.Hour) * time.Hour)
		if e, ok := forecast.At(at); ok {
			out.Available = true
			out.Time = e.Time.Format("15:04")
			out.Description = e.Description
			out.Temperature = e.Temperature
			out.Humidity = e.Humidity
			out.WindSpeed = e.WindSpeed
		}
	}

	summary, ok := forecast.Day(day)
	if !ok {
		out.Recommendation = weather.Fallback()
		return out, nil
	}
	if !out.Available {
		out.Available = true
		out.Description = summary.Description
		out.Humidity = summary.Humidity
		out.WindSpeed = summary.WindSpeed
	}
	out.TempMin = summary.TempMin
	out.TempMax = summary.TempMax
	out.Recommendation = weather.ForecastRecommend(summary)
	return out, nil
}

// decodeInput maps the model's loosely typed arguments onto a struct.
func decodeInput(input map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}
