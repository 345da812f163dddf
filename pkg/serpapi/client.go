package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client is the SerpApi client for the google_hotels engine.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a new SerpApi client.
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

// SearchHotels runs a google_hotels search and returns the raw properties.
func (c *Client) SearchHotels(ctx context.Context, q HotelQuery) ([]Hotel, error) {
	if strings.TrimSpace(q.Destination) == "" || q.CheckIn.IsZero() || !q.CheckOut.After(q.CheckIn) {
		return nil, ErrInvalidQuery
	}

	params := url.Values{}
	params.Set("engine", engineHotels)
	params.Set("q", q.Destination)
	params.Set("check_in_date", q.CheckIn.Format(dateLayout))
	params.Set("check_out_date", q.CheckOut.Format(dateLayout))
	params.Set("adults", strconv.Itoa(max(q.Adults, 1)))
	params.Set("children", strconv.Itoa(max(q.Children, 0)))
	params.Set("currency", currencyVND)
	params.Set("gl", countryVN)
	params.Set("hl", languageVI)
	params.Set("hotel_class", hotelClass(q.Budget))
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathSearch+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var out hotelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("serpapi: failed to decode response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("serpapi: %s", out.Error)
	}
	return out.Properties, nil
}

func hotelClass(budget string) string {
	if c, ok := hotelClasses[budget]; ok {
		return c
	}
	return hotelClasses[BudgetMidRange]
}
