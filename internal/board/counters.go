package board

import (
	"context"
	"log/slog"

	"github.com/garrettladley/tally/internal/client/tally"
	"github.com/garrettladley/tally/internal/xslog"
)

type CounterStore struct {
	store[tally.Counter]

	svc     tally.CounterService
	refresh func(context.Context) error
}

func newCounterStore(svc tally.CounterService, refresh func(context.Context) error, logger *slog.Logger) *CounterStore {
	return &CounterStore{
		store: store[tally.Counter]{
			op:     tally.OpListCounters,
			list:   svc.List,
			logger: logger,
		},
		svc:     svc,
		refresh: refresh,
	}
}

func (s *CounterStore) Increment(ctx context.Context, id int64) error {
	return mutate(ctx, s.logger, tally.OpIncrementCounter, s.refresh, func(ctx context.Context) error {
		return s.svc.Increment(ctx, id)
	}, xslog.CounterID(id))
}

func (s *CounterStore) Decrement(ctx context.Context, id int64) error {
	return mutate(ctx, s.logger, tally.OpDecrementCounter, s.refresh, func(ctx context.Context) error {
		return s.svc.Decrement(ctx, id)
	}, xslog.CounterID(id))
}

// Add creates a counter. A label that is empty after trimming is ignored;
// otherwise the label is sent as typed.
func (s *CounterStore) Add(ctx context.Context, label string) error {
	if !ValidCounterLabel(label) {
		return nil
	}
	return mutate(ctx, s.logger, tally.OpAddPerson, s.refresh, func(ctx context.Context) error {
		return s.svc.Add(ctx, label)
	})
}

func (s *CounterStore) Remove(ctx context.Context, id int64) error {
	return mutate(ctx, s.logger, tally.OpRemovePerson, s.refresh, func(ctx context.Context) error {
		return s.svc.Remove(ctx, id)
	}, xslog.CounterID(id))
}
