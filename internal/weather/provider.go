package weather

import (
	"context"
)

// DailyFeedFetcher returns the raw daily feed document for a city id.
type DailyFeedFetcher interface {
	FetchDaily(ctx context.Context, cityID string) ([]byte, error)
}

// WeeklyFeedFetcher returns the raw weekly feed document for an area code.
type WeeklyFeedFetcher interface {
	FetchWeekly(ctx context.Context, areaCode string) ([]byte, error)
}

// Reconciler produces a merged forecast for a city id.
type Reconciler interface {
	Reconcile(ctx context.Context, cityID string) (*MergedForecast, error)
}

// Store is the contract the forecast cache must satisfy.
type Store interface {
	SaveForecast(cityID string, forecast *MergedForecast)
	GetLatest(cityID string) (*MergedForecast, error)
}
