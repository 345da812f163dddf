package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"travel-assistant/pkg/textnorm"
)

// Client is the OpenWeatherMap API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a new OpenWeatherMap client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}, nil
}

// QueryName converts a destination into an OpenWeatherMap query.
func QueryName(city string) string {
	key := strings.ToLower(strings.TrimSpace(city))
	if q, ok := cityQueries[key]; ok {
		return q
	}
	return textnorm.Title(textnorm.Fold(key)) + ",VN"
}

// Current returns the observed weather for city.
func (c *Client) Current(ctx context.Context, city string) (*Current, error) {
	var raw owmCurrent
	if err := c.get(ctx, pathCurrent, city, &raw); err != nil {
		return nil, err
	}

	loc := time.FixedZone("", raw.Timezone)
	cur := &Current{
		City:        raw.Name,
		Country:     raw.Sys.Country,
		Temperature: raw.Main.Temp,
		FeelsLike:   raw.Main.FeelsLike,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
		Visibility:  raw.Visibility / 1000,
		ObservedAt:  time.Unix(raw.Dt, 0).In(loc),
	}
	if len(raw.Weather) > 0 {
		cur.Description = raw.Weather[0].Description
	}
	return cur, nil
}

// Forecast returns the 3-hourly five-day forecast for city.
func (c *Client) Forecast(ctx context.Context, city string) (*Forecast, error) {
	var raw owmForecast
	if err := c.get(ctx, pathForecast, city, &raw); err != nil {
		return nil, err
	}

	loc := time.FixedZone("", raw.City.Timezone)
	fc := &Forecast{City: raw.City.Name, Country: raw.City.Country}
	for _, item := range raw.List {
		e := Entry{
			Time:        time.Unix(item.Dt, 0).In(loc),
			Temperature: item.Main.Temp,
			TempMin:     item.Main.TempMin,
			TempMax:     item.Main.TempMax,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
		}
		if len(item.Weather) > 0 {
			e.Description = item.Weather[0].Description
		}
		fc.Entries = append(fc.Entries, e)
	}
	return fc, nil
}

func (c *Client) get(ctx context.Context, path, city string, out interface{}) error {
	q := url.Values{}
	q.Set("q", QueryName(city))
	q.Set("appid", c.apiKey)
	q.Set("units", unitsMetric)
	q.Set("lang", langVI)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrCityNotFound, city)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("weather: API error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("weather: failed to decode response: %w", err)
	}
	return nil
}
