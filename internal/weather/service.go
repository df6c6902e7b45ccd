package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"code.cloudfoundry.org/clock"
	"github.com/google/uuid"

	"github.com/i474232898/jma-forecast/internal/city"
)

var (
	// ErrUnknownCity is returned before any network call when the city id is not in
	// the directory.
	ErrUnknownCity = city.ErrUnknownCity

	// ErrUpstreamFetch is returned when either feed could not be fetched.
	ErrUpstreamFetch = errors.New("upstream fetch failed")

	// ErrMalformedPayload is returned when either feed fails structural validation.
	ErrMalformedPayload = errors.New("upstream payload malformed")
)

// Service reconciles the daily feed with the weekly feed. It holds no per-call state
// and is safe for concurrent use.
type Service struct {
	daily  DailyFeedFetcher
	weekly WeeklyFeedFetcher
	clock  clock.Clock
}

// NewService creates a new Service. A nil clock falls back to the wall clock.
func NewService(daily DailyFeedFetcher, weekly WeeklyFeedFetcher, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.NewClock()
	}
	return &Service{
		daily:  daily,
		weekly: weekly,
		clock:  clk,
	}
}

// Reconcile resolves the city, fetches both feeds concurrently, validates them and
// returns the daily feed with reconciled temperatures. Any failure is terminal for the
// call; no partial result is returned.
func (s *Service) Reconcile(ctx context.Context, cityID string) (*MergedForecast, error) {
	entry, err := city.Resolve(cityID)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	areaCode := city.WeeklyAreaCode(cityID)
	log.Printf("DEBUG: reconcile %s started for %s (%s), weekly area %s", runID, cityID, entry.Label, areaCode)

	dailyRaw, weeklyRaw, err := s.fetchBoth(ctx, cityID, areaCode)
	if err != nil {
		log.Printf("ERROR: reconcile %s: %v", runID, err)
		return nil, err
	}

	daily, err := DecodeDailyFeed(dailyRaw)
	if err != nil {
		log.Printf("ERROR: reconcile %s: %v", runID, err)
		return nil, err
	}
	weekly, err := DecodeWeeklyFeed(weeklyRaw)
	if err != nil {
		log.Printf("ERROR: reconcile %s: %v", runID, err)
		return nil, err
	}

	table := BuildWeeklyTemperatureTable(weekly, entry.Label)
	useWeekly := ShouldUseWeeklyForTomorrow(s.clock)

	merged := MergedForecast(*daily)
	merged.Forecasts = MergeForecasts(daily.Forecasts, useWeekly, table)

	log.Printf("DEBUG: reconcile %s done: %d days, %d long-term dates, weekly tomorrow=%t",
		runID, len(merged.Forecasts), len(table.LongTerm), useWeekly)
	return &merged, nil
}

// fetchBoth issues both fetches at once. The first failure cancels the other fetch and
// is the one reported.
func (s *Service) fetchBoth(ctx context.Context, cityID, areaCode string) ([]byte, []byte, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg        sync.WaitGroup
		once      sync.Once
		firstErr  error
		dailyRaw  []byte
		weeklyRaw []byte
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		b, err := s.daily.FetchDaily(fetchCtx, cityID)
		if err != nil {
			fail(fmt.Errorf("%w: daily feed: %w", ErrUpstreamFetch, err))
			return
		}
		dailyRaw = b
	}()
	go func() {
		defer wg.Done()
		b, err := s.weekly.FetchWeekly(fetchCtx, areaCode)
		if err != nil {
			fail(fmt.Errorf("%w: weekly feed %s: %w", ErrUpstreamFetch, areaCode, err))
			return
		}
		weeklyRaw = b
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}
	return dailyRaw, weeklyRaw, nil
}
