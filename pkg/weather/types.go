package weather

import (
	"net/http"
	"time"
)

// Config configures a Client.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Current is the observed weather of a city.
type Current struct {
	City        string
	Country     string
	Description string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64 // m/s
	Visibility  float64 // km
	ObservedAt  time.Time
}

// Entry is a single 3-hour forecast step.
type Entry struct {
	Time        time.Time
	Temperature float64
	TempMin     float64
	TempMax     float64
	Humidity    int
	WindSpeed   float64
	Description string
}

// Forecast holds the five-day forecast of a city.
type Forecast struct {
	City    string
	Country string
	Entries []Entry
}

// DaySummary aggregates the forecast entries of one calendar day.
type DaySummary struct {
	Date        time.Time
	Description string
	TempMin     float64
	TempMax     float64
	Humidity    int
	WindSpeed   float64
}

// Wire format.

type owmCondition struct {
	Description string `json:"description"`
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

type owmWind struct {
	Speed float64 `json:"speed"`
}

type owmCurrent struct {
	Name       string         `json:"name"`
	Sys        struct{ Country string `json:"country"` } `json:"sys"`
	Weather    []owmCondition `json:"weather"`
	Main       owmMain        `json:"main"`
	Wind       owmWind        `json:"wind"`
	Visibility float64        `json:"visibility"`
	Dt         int64          `json:"dt"`
	Timezone   int            `json:"timezone"`
}

type owmForecast struct {
	List []struct {
		Dt      int64          `json:"dt"`
		Main    owmMain        `json:"main"`
		Weather []owmCondition `json:"weather"`
		Wind    owmWind        `json:"wind"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}
