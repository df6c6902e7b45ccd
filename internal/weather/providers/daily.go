package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/jma-forecast/internal/weather"
)

// DefaultDailyFeedURL is the livedoor-compatible 3-day forecast endpoint.
const DefaultDailyFeedURL = "https://weather.tsukumijima.net/api/forecast"

// DailyFeedClient fetches the daily forecast feed.
type DailyFeedClient struct {
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewDailyFeedClient creates a client for the daily feed. An empty baseURL uses
// DefaultDailyFeedURL.
func NewDailyFeedClient(client *http.Client, baseURL string, backoff BackoffConfig) *DailyFeedClient {
	if baseURL == "" {
		baseURL = DefaultDailyFeedURL
	}
	return &DailyFeedClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: backoff,
		},
		circuit: newBreaker("daily-feed"),
	}
}

// FetchDaily returns the raw daily feed document for cityID.
func (c *DailyFeedClient) FetchDaily(ctx context.Context, cityID string) ([]byte, error) {
	values := url.Values{}
	values.Set("city", cityID)
	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())

	body, err := fetchBody(ctx, c.httpCfg, c.circuit, u)
	if err != nil {
		return nil, fmt.Errorf("daily feed %s: %w", cityID, err)
	}
	return body, nil
}

var _ weather.DailyFeedFetcher = (*DailyFeedClient)(nil)
