package main

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/tally/internal/tui"
	"github.com/garrettladley/tally/internal/xslog"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := configFrom(cmd.Context())
	if err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	a := newApp(cfg, logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := tui.New(tui.Deps{
		Ctx:             ctx,
		Cancel:          cancel,
		Logger:          a.logger,
		Board:           a.board,
		Session:         a.session,
		ServerURL:       cfg.ServerURL,
		RequestTimeout:  cfg.RequestTimeout,
		RefreshInterval: cfg.RefreshInterval,
		CountersTitle:   cfg.CountersTitle,
		CausesTitle:     cfg.CausesTitle,
	})

	p := tea.NewProgram(&model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		a.logger.Error("tui exited", xslog.Error(err))
		return err
	}

	return nil
}
