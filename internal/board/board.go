// Package board keeps the local view of both tally collections in step with
// the counting service.
//
// Reads fail open: a failed refresh leaves the previous snapshot in place.
// Every write is followed by a refresh of both collections, whether or not
// the write succeeded, so the view converges on the service's state.
package board

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/tally/internal/client/tally"
)

type Board struct {
	Counters *CounterStore
	Causes   *CauseStore

	logger *slog.Logger
}

func New(client *tally.Client, logger *slog.Logger) *Board {
	return NewFromServices(client.Counters, client.Causes, logger)
}

func NewFromServices(counters tally.CounterService, causes tally.CauseService, logger *slog.Logger) *Board {
	b := &Board{logger: logger}
	b.Counters = newCounterStore(counters, b.Refresh, logger)
	b.Causes = newCauseStore(causes, b.Refresh, logger)
	return b
}

// Refresh reloads both collections concurrently. Each store is refreshed
// even if the other fails; the first error is returned.
func (b *Board) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return b.Counters.Refresh(ctx) })
	g.Go(func() error { return b.Causes.Refresh(ctx) })
	return g.Wait()
}

// Loaded reports whether both collections finished their first refresh.
func (b *Board) Loaded() bool {
	return b.Counters.Loaded() && b.Causes.Loaded()
}

// Stale reports whether either collection is showing data from before its
// latest refresh attempt.
func (b *Board) Stale() bool {
	return b.Counters.Stale() || b.Causes.Stale()
}
