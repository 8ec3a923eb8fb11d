package board

import (
	"context"
	"log/slog"

	"github.com/garrettladley/tally/internal/client/tally"
	"github.com/garrettladley/tally/internal/xslog"
)

type CauseStore struct {
	store[tally.Cause]

	svc     tally.CauseService
	refresh func(context.Context) error
}

func newCauseStore(svc tally.CauseService, refresh func(context.Context) error, logger *slog.Logger) *CauseStore {
	return &CauseStore{
		store: store[tally.Cause]{
			op:     tally.OpListCauses,
			list:   svc.List,
			logger: logger,
		},
		svc:     svc,
		refresh: refresh,
	}
}

func (s *CauseStore) Increment(ctx context.Context, cause string) error {
	return mutate(ctx, s.logger, tally.OpIncrementCause, s.refresh, func(ctx context.Context) error {
		return s.svc.Increment(ctx, cause)
	}, xslog.CauseName(cause))
}

func (s *CauseStore) Decrement(ctx context.Context, cause string) error {
	return mutate(ctx, s.logger, tally.OpDecrementCause, s.refresh, func(ctx context.Context) error {
		return s.svc.Decrement(ctx, cause)
	}, xslog.CauseName(cause))
}

// Add creates a cause. It is ignored unless the name is non-blank and color
// is a "#RRGGBB" code.
func (s *CauseStore) Add(ctx context.Context, cause string, color string) error {
	if !ValidCause(cause, color) {
		return nil
	}
	return mutate(ctx, s.logger, tally.OpAddCause, s.refresh, func(ctx context.Context) error {
		return s.svc.Add(ctx, cause, color)
	}, xslog.CauseName(cause))
}

func (s *CauseStore) Remove(ctx context.Context, cause string) error {
	return mutate(ctx, s.logger, tally.OpRemoveCause, s.refresh, func(ctx context.Context) error {
		return s.svc.Remove(ctx, cause)
	}, xslog.CauseName(cause))
}
