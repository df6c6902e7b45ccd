package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/i474232898/jma-forecast/internal/weather"
)

// DefaultWeeklyFeedURL is the JMA forecast data directory; documents live at
// {base}/{areaCode}.json.
const DefaultWeeklyFeedURL = "https://www.jma.go.jp/bosai/forecast/data/forecast"

// WeeklyFeedClient fetches the JMA weekly forecast feed, rate limited so that a burst of
// cities does not hammer the agency's server.
type WeeklyFeedClient struct {
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	limiter *rate.Limiter
}

// NewWeeklyFeedClient creates a client for the weekly feed. rps is the maximum requests per
// second (fractional values allowed); burst is the maximum burst size.
func NewWeeklyFeedClient(client *http.Client, baseURL string, backoff BackoffConfig, rps float64, burst int) *WeeklyFeedClient {
	if baseURL == "" {
		baseURL = DefaultWeeklyFeedURL
	}
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &WeeklyFeedClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: backoff,
		},
		circuit: newBreaker("weekly-feed"),
		limiter: rate.NewLimiter(limit, burst),
	}
}

// FetchWeekly returns the raw weekly feed document for areaCode.
func (c *WeeklyFeedClient) FetchWeekly(ctx context.Context, areaCode string) ([]byte, error) {
	// Wait for rate limiter permission or context cancellation
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	u := fmt.Sprintf("%s/%s.json", c.baseURL, url.PathEscape(areaCode))
	body, err := fetchBody(ctx, c.httpCfg, c.circuit, u)
	if err != nil {
		return nil, fmt.Errorf("weekly feed %s: %w", areaCode, err)
	}
	return body, nil
}

var _ weather.WeeklyFeedFetcher = (*WeeklyFeedClient)(nil)
