package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/tally/internal/board"
)

// StartPollCmd runs the board poller and forwards each refresh result to
// pollCh. The channel bridges the blocking poller with bubbletea's message
// system. It returns once ctx is cancelled.
func StartPollCmd(ctx context.Context, b *board.Board, interval time.Duration, pollCh chan<- error) tea.Cmd {
	return func() tea.Msg {
		b.Poll(ctx, interval, func(err error) {
			select {
			case pollCh <- err:
			case <-ctx.Done():
			}
		})
		return PollStoppedMsg{}
	}
}

// ListenPollCmd waits for the next poll result. It must be re-issued after
// each PollMsg to keep listening.
func ListenPollCmd(ctx context.Context, pollCh <-chan error) tea.Cmd {
	return func() tea.Msg {
		select {
		case err, ok := <-pollCh:
			if !ok {
				return PollStoppedMsg{}
			}
			return PollMsg{Err: err}
		case <-ctx.Done():
			return PollStoppedMsg{}
		}
	}
}
