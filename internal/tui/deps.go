package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/garrettladley/tally/internal/auth"
	"github.com/garrettladley/tally/internal/board"
)

type Deps struct {
	Ctx             context.Context
	Cancel          context.CancelFunc
	Logger          *slog.Logger
	Board           *board.Board
	Session         *auth.Session
	ServerURL       string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
	CountersTitle   string
	CausesTitle     string
}
