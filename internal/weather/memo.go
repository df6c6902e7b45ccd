package weather

import (
	"context"
	"log"
)

// Memoized serves recent reconciliation results from a Store and falls back to the
// wrapped Reconciler on a miss. Failed reconciliations are not stored.
type Memoized struct {
	reconciler Reconciler
	store      Store
}

// NewMemoized creates a new Memoized reader.
func NewMemoized(reconciler Reconciler, store Store) *Memoized {
	return &Memoized{
		reconciler: reconciler,
		store:      store,
	}
}

// Reconcile returns the stored forecast when one is available, otherwise it reconciles
// afresh.
func (m *Memoized) Reconcile(ctx context.Context, cityID string) (*MergedForecast, error) {
	if f, err := m.store.GetLatest(cityID); err == nil {
		return f, nil
	}
	return m.Refresh(ctx, cityID)
}

// Refresh always reconciles and stores a successful result.
func (m *Memoized) Refresh(ctx context.Context, cityID string) (*MergedForecast, error) {
	f, err := m.reconciler.Reconcile(ctx, cityID)
	if err != nil {
		return nil, err
	}
	m.store.SaveForecast(cityID, f)
	log.Printf("DEBUG: stored forecast for %s", cityID)
	return f, nil
}

var _ Reconciler = (*Memoized)(nil)
var _ Reconciler = (*Service)(nil)
