package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/garrettladley/tally/internal/auth"
	"github.com/garrettladley/tally/internal/board"
	"github.com/garrettladley/tally/internal/client/tally"
	"github.com/garrettladley/tally/internal/config"
	"github.com/garrettladley/tally/internal/xslog"
)

type app struct {
	cfg     config.Config
	logger  *slog.Logger
	client  *tally.Client
	board   *board.Board
	session *auth.Session
}

// newApp wires the service client, the board and the edit session for one
// process. Every request of the process carries the same session id.
func newApp(cfg config.Config, logger *slog.Logger) *app {
	sessionID := uuid.NewString()
	logger = logger.With(xslog.SessionID(sessionID))

	client := tally.New(cfg.ServerURL,
		tally.WithLogger(logger),
		tally.WithSessionID(sessionID),
		tally.WithTimeout(cfg.RequestTimeout),
	)

	logger.Debug("client ready", xslog.BaseURL(cfg.ServerURL), xslog.Version())

	return &app{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		board:   board.New(client, logger),
		session: auth.NewSession(client.Auth, logger),
	}
}

// tuiLogger logs to LOG_FILE when set. The TUI owns the terminal, so without
// a file logs are discarded.
func tuiLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return xslog.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return xslog.NewLoggerFromEnv(f, cfg.Env), func() { _ = f.Close() }, nil
}

func cliLogger(cfg config.Config) *slog.Logger {
	return xslog.NewLoggerFromEnv(os.Stderr, cfg.Env)
}

type configKey struct{}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the config read by the root command. Commands run
// without it, as in tests, read the environment themselves.
func configFrom(ctx context.Context) (config.Config, error) {
	if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
		return cfg, nil
	}
	cfg, err := config.Read()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}
