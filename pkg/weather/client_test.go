package weather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/pkg/weather"
)

// 2025-01-16 00:00 UTC and the following 3-hour steps; Hanoi is UTC+7.
const forecastBody = `{
	"list": [
		{"dt": 1736985600, "main": {"temp": 18, "temp_min": 17, "temp_max": 19, "humidity": 70}, "weather": [{"description": "mây rải rác"}], "wind": {"speed": 2}},
		{"dt": 1736996400, "main": {"temp": 21, "temp_min": 20, "temp_max": 22, "humidity": 65}, "weather": [{"description": "mưa nhẹ"}], "wind": {"speed": 3}},
		{"dt": 1737007200, "main": {"temp": 20, "temp_min": 19, "temp_max": 24, "humidity": 60}, "weather": [{"description": "mưa nhẹ"}], "wind": {"speed": 3}}
	],
	"city": {"name": "Hanoi", "country": "VN", "timezone": 25200}
}`

func newServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("appid"))
		assert.Equal(t, "metric", q.Get("units"))

		if q.Get("q") == "Atlantis,VN" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.URL.Path {
		case "/data/2.5/weather":
			assert.Equal(t, "Hanoi,VN", q.Get("q"))
			_, _ = w.Write([]byte(`{
				"name": "Hanoi", "sys": {"country": "VN"},
				"weather": [{"description": "bầu trời quang đãng"}],
				"main": {"temp": 31.5, "feels_like": 35, "humidity": 85},
				"wind": {"speed": 8.2}, "visibility": 10000,
				"dt": 1736985600, "timezone": 25200
			}`))
		case "/data/2.5/forecast":
			_, _ = w.Write([]byte(forecastBody))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
}

func TestClient(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()

	c, err := weather.New(weather.Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Current", func(t *testing.T) {
		cur, err := c.Current(ctx, "hà nội")
		require.NoError(t, err)
		assert.Equal(t, "Hanoi", cur.City)
		assert.Equal(t, 31.5, cur.Temperature)
		assert.Equal(t, 10.0, cur.Visibility)
		assert.Equal(t, 7, cur.ObservedAt.Hour())
	})

	t.Run("Forecast", func(t *testing.T) {
		fc, err := c.Forecast(ctx, "hà nội")
		require.NoError(t, err)
		require.Len(t, fc.Entries, 3)

		loc := fc.Entries[0].Time.Location()
		e, ok := fc.At(time.Date(2025, 1, 16, 12, 0, 0, 0, loc))
		require.True(t, ok)
		assert.Equal(t, 13, e.Time.Hour())

		_, ok = fc.At(time.Date(2025, 1, 20, 12, 0, 0, 0, loc))
		assert.False(t, ok)

		day, ok := fc.Day(time.Date(2025, 1, 16, 0, 0, 0, 0, loc))
		require.True(t, ok)
		assert.Equal(t, 17.0, day.TempMin)
		assert.Equal(t, 24.0, day.TempMax)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := c.Current(ctx, "atlantis")
		assert.True(t, errors.Is(err, weather.ErrCityNotFound))
	})
}

func TestNewRequiresKey(t *testing.T) {
	_, err := weather.New(weather.Config{})
	assert.ErrorIs(t, err, weather.ErrMissingAPIKey)
}

func TestQueryName(t *testing.T) {
	assert.Equal(t, "Hanoi,VN", weather.QueryName("Hà Nội"))
	assert.Equal(t, "Sa Pa,VN", weather.QueryName("sa pa"))
	assert.Equal(t, "Quang Binh,VN", weather.QueryName("quảng bình"))
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name string
		in   weather.Current
		want []string
	}{
		{"hot clear humid windy", weather.Current{Temperature: 33, Description: "bầu trời quang đãng", Humidity: 90, WindSpeed: 9},
			[]string{"uống đủ nước", "kem chống nắng", "oi bức", "gió khá mạnh"}},
		{"cold rain", weather.Current{Temperature: 8, Description: "mưa nhẹ"},
			[]string{"mặc ấm nhiều lớp", "mang ô"}},
		{"cool fog", weather.Current{Temperature: 15, Description: "sương mù"},
			[]string{"áo khoác mỏng", "tầm nhìn"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weather.Recommend(tt.in)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}

	assert.Equal(t, "Thời tiết thuận lợi cho chuyến đi", weather.Recommend(weather.Current{Temperature: 25, Description: "mây"}))
}

func TestForecastRecommend(t *testing.T) {
	assert.Contains(t, weather.ForecastRecommend(weather.DaySummary{TempMin: 8, TempMax: 14, Description: "mưa rào"}), "quần áo ấm")
	assert.Contains(t, weather.ForecastRecommend(weather.DaySummary{TempMin: 8, TempMax: 14, Description: "mưa rào"}), "đồ đi mưa")
	assert.Contains(t, weather.ForecastRecommend(weather.DaySummary{TempMin: 29, TempMax: 35, Description: "nắng"}), "trong nhà")
	assert.NotEmpty(t, weather.Fallback())
}
