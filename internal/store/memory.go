package store

import (
	"errors"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/i474232898/jma-forecast/internal/weather"
)

var (
	// ErrNotFound is returned when no fresh forecast is available for a city.
	ErrNotFound = errors.New("no forecast for city")
)

type entry struct {
	forecast  *weather.MergedForecast
	expiresAt time.Time
}

// MemoryStore is a concurrency-safe in-memory cache of merged forecasts keyed by city id.
type MemoryStore struct {
	mu sync.RWMutex

	// key: city id
	data map[string]entry

	// maxAge is how long a forecast is served; 0 disables age-based expiry. Entries
	// never outlive the cutoff boundary that follows their save.
	maxAge time.Duration
	clock  clock.Clock
}

// NewMemoryStore creates a new MemoryStore. A nil clock falls back to the wall clock.
func NewMemoryStore(maxAge time.Duration, clk clock.Clock) *MemoryStore {
	if clk == nil {
		clk = clock.NewClock()
	}
	return &MemoryStore{
		data:   make(map[string]entry),
		maxAge: maxAge,
		clock:  clk,
	}
}

// SaveForecast replaces the forecast stored for a city.
func (s *MemoryStore) SaveForecast(cityID string, forecast *weather.MergedForecast) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	expiresAt := weather.NextCutoffBoundary(now)
	if s.maxAge > 0 && now.Add(s.maxAge).Before(expiresAt) {
		expiresAt = now.Add(s.maxAge)
	}
	s.data[cityID] = entry{
		forecast:  forecast,
		expiresAt: expiresAt,
	}
}

// GetLatest returns the stored forecast for a city unless it has expired.
func (s *MemoryStore) GetLatest(cityID string) (*weather.MergedForecast, error) {
	s.mu.RLock()
	e, ok := s.data[cityID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if s.expired(e) {
		return nil, ErrNotFound
	}
	return e.forecast, nil
}

// Prune drops expired entries and returns how many were removed.
func (s *MemoryStore) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, e := range s.data {
		if s.expired(e) {
			delete(s.data, id)
			pruned++
		}
	}
	return pruned
}

func (s *MemoryStore) expired(e entry) bool {
	return !s.clock.Now().Before(e.expiresAt)
}

var _ weather.Store = (*MemoryStore)(nil)
