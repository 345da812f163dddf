package serpapi

import "context"

// IHotels searches hotels. Implementations are safe for concurrent use.
type IHotels interface {
	SearchHotels(ctx context.Context, q HotelQuery) ([]Hotel, error)
}

var _ IHotels = (*Client)(nil)
