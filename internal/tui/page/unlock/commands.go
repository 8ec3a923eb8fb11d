package unlock

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/tally/internal/auth"
)

type LoginMsg struct {
	State  auth.State
	Reason string
}

// LoginCmd runs one password exchange. The password lives only in this closure.
func LoginCmd(ctx context.Context, session *auth.Session, password string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		state := session.Login(ctx, password)
		return LoginMsg{State: state, Reason: session.Reason()}
	}
}
