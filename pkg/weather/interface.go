package weather

import (
	"context"
)

// IWeather fetches live weather. Implementations are safe for concurrent use.
type IWeather interface {
	Current(ctx context.Context, city string) (*Current, error)
	Forecast(ctx context.Context, city string) (*Forecast, error)
}

var _ IWeather = (*Client)(nil)
