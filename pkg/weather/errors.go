package weather

import "errors"

var (
	ErrMissingAPIKey = errors.New("weather: API key is required")
	ErrCityNotFound  = errors.New("weather: city not found")
	ErrNoForecast    = errors.New("weather: no forecast for the requested time")
)
