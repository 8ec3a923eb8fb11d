//go:build !release

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/garrettladley/tally/internal/client/tally"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Probe the counting service",
		Long:  "Calls both read endpoints and reports whether each one answers.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFrom(cmd.Context())
			if err != nil {
				return err
			}

			a := newApp(cfg, cliLogger(cfg))
			fmt.Fprintf(cmd.OutOrStdout(), "service: %s\n", cfg.ServerURL)
			return probe(cmd.Context(), a.client, cmd.OutOrStdout())
		},
	}
}

var errProbeFailed = errors.New("one or more endpoints failed")

func probe(ctx context.Context, client *tally.Client, w io.Writer) error {
	var failures int

	fmt.Fprintln(w, "\n[Counters.List]")
	counters, err := client.Counters.List(ctx)
	if err != nil {
		fmt.Fprintf(w, "  ERROR: %v\n", err)
		failures++
	} else {
		fmt.Fprintf(w, "  OK: %d counters\n", len(counters))
	}

	fmt.Fprintln(w, "\n[Causes.List]")
	causes, err := client.Causes.List(ctx)
	if err != nil {
		fmt.Fprintf(w, "  ERROR: %v\n", err)
		failures++
	} else {
		fmt.Fprintf(w, "  OK: %d causes\n", len(causes))
	}

	if failures > 0 {
		return errProbeFailed
	}
	return nil
}
