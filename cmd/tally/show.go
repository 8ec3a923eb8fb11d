package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/tally/internal/aggregate"
	"github.com/garrettladley/tally/internal/client/tally"
	"github.com/garrettladley/tally/internal/config"
)

func showCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board once and exit",
		Long:  "Refreshes both collections and prints the ordered counters and each cause's share.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := configFrom(ctx)
			if err != nil {
				return err
			}

			a := newApp(cfg, cliLogger(cfg))
			if err := a.board.Refresh(ctx); err != nil {
				return fmt.Errorf("failed to load board: %w", err)
			}

			snap := newSnapshot(a.board.Counters.Snapshot(), a.board.Causes.Snapshot())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), snap)
			}
			return writeText(cmd.OutOrStdout(), cfg, snap)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the board as JSON")
	return cmd
}

type causeShare struct {
	Cause   string `json:"cause"`
	Value   int64  `json:"value"`
	Color   string `json:"color"`
	Percent int    `json:"percent"`
}

type snapshot struct {
	Counters   []tally.Counter `json:"counters"`
	Causes     []causeShare    `json:"causes"`
	CauseTotal int64           `json:"cause_total"`
}

func newSnapshot(counters []tally.Counter, causes []tally.Cause) snapshot {
	s := snapshot{
		Counters:   aggregate.OrderCounters(counters),
		Causes:     make([]causeShare, 0, len(causes)),
		CauseTotal: aggregate.Total(causes),
	}
	for _, slice := range aggregate.Project(causes, aggregate.DefaultGeometry(1)) {
		s.Causes = append(s.Causes, causeShare{
			Cause:   slice.Cause.Cause,
			Value:   slice.Cause.Value,
			Color:   slice.Cause.Color,
			Percent: slice.Percent(),
		})
	}
	return s
}

func writeJSON(w io.Writer, s snapshot) error {
	enc := go_json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func writeText(w io.Writer, cfg config.Config, s snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, cfg.CountersTitle)
	if len(s.Counters) == 0 {
		fmt.Fprintln(tw, "  (none)")
	}
	for _, c := range s.Counters {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Label, c.Value)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, cfg.CausesTitle)
	if len(s.Causes) == 0 {
		fmt.Fprintln(tw, "  (none)")
	}
	for _, c := range s.Causes {
		fmt.Fprintf(tw, "  %s\t%d\t%3d%%\t%s\n", c.Cause, c.Value, c.Percent, strings.ToLower(c.Color))
	}

	return tw.Flush()
}
