package board

import (
	"context"
	"time"

	"github.com/garrettladley/tally/internal/xslog"
)

// Poll refreshes the board every interval until ctx is cancelled, calling
// notify after each refresh. A non-positive interval returns immediately.
func (b *Board) Poll(ctx context.Context, interval time.Duration, notify func(error)) {
	if interval <= 0 {
		return
	}

	b.logger.DebugContext(ctx, "starting board poller", xslog.Interval(interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.logger.DebugContext(ctx, "board poller stopped")
			return
		case <-ticker.C:
			err := b.Refresh(ctx)
			if ctx.Err() != nil {
				return
			}
			if notify != nil {
				notify(err)
			}
		}
	}
}
