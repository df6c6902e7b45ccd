package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/jma-forecast/internal/weather"
)

// Refresher re-runs a reconciliation and stores the result.
type Refresher interface {
	Refresh(ctx context.Context, cityID string) (*weather.MergedForecast, error)
}

// Pruner drops expired cache entries and reports how many were removed.
type Pruner interface {
	Prune() int
}

// Scheduler periodically refreshes the forecasts of configured cities so that requests
// for them are served from the cache.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	pruner    Pruner
	cityIDs   []string
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler. pruner may be nil.
func New(cityIDs []string, interval time.Duration, refresher Refresher, pruner Pruner) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		pruner:    pruner,
		cityIDs:   cityIDs,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the periodic job and starts the underlying scheduler. The first run
// happens immediately.
func (s *Scheduler) Start() error {
	if len(s.cityIDs) == 0 && s.pruner == nil {
		log.Println("scheduler: no cities configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce drops expired cache entries, then refreshes every configured city
// concurrently and waits for all of them.
func (s *Scheduler) RunOnce() {
	if s.pruner != nil {
		if n := s.pruner.Prune(); n > 0 {
			log.Printf("scheduler: dropped %d expired forecasts", n)
		}
	}

	log.Println("scheduler: running forecast refresh job")

	var wg sync.WaitGroup
	for _, id := range s.cityIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
			defer cancel()

			if _, err := s.refresher.Refresh(ctx, id); err != nil {
				log.Printf("scheduler: refresh failed for %s: %v", id, err)
			}
		}(id)
	}
	wg.Wait()
	log.Println("scheduler: completed forecast refresh job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
