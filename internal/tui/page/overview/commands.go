package overview

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/tally/internal/board"
)

type RefreshedMsg struct {
	Err error
}

type MutatedMsg struct {
	Op  string
	Err error
}

func RefreshCmd(ctx context.Context, b *board.Board, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return RefreshedMsg{Err: b.Refresh(ctx)}
	}
}

// MutateCmd runs one store write. The stores refresh the board themselves,
// so the timeout covers the write and the refresh that follows it.
func MutateCmd(ctx context.Context, timeout time.Duration, op string, write func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 2*timeout)
		defer cancel()
		return MutatedMsg{Op: op, Err: write(ctx)}
	}
}
