package board

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/garrettladley/tally/internal/xslog"
)

// store is the read-through snapshot shared by both collections.
type store[T any] struct {
	op     string
	list   func(ctx context.Context) ([]T, error)
	logger *slog.Logger

	mu     sync.RWMutex
	items  []T
	loaded bool
	stale  bool
}

// Refresh replaces the snapshot on success. On failure the previous snapshot
// is kept and the error returned.
func (s *store[T]) Refresh(ctx context.Context) error {
	items, err := s.list(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.stale = err != nil

	if err != nil {
		s.logger.WarnContext(ctx, "refresh failed, keeping snapshot",
			xslog.Operation(s.op),
			xslog.Count(len(s.items)),
			xslog.Error(err),
		)
		return err
	}

	s.items = items
	return nil
}

// Snapshot returns a copy of the latest collection.
func (s *store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Loaded reports whether a refresh has completed, successfully or not.
func (s *store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Stale reports whether the latest refresh failed, leaving an older snapshot.
func (s *store[T]) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// mutate performs one write and then refreshes the whole board whatever the
// outcome. The write error is returned; a failed refresh is logged by the
// store and left readable through Stale.
func mutate(ctx context.Context, logger *slog.Logger, op string, refresh func(context.Context) error, write func(context.Context) error, attrs ...slog.Attr) error {
	err := write(ctx)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "write failed", append(attrs, xslog.Operation(op), xslog.Error(err))...)
	}

	// the board logs its own refresh failures
	_ = refresh(ctx)

	return err
}
