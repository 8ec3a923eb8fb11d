package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/garrettladley/tally/internal/client/github"
	"github.com/garrettladley/tally/internal/version"
	"github.com/garrettladley/tally/internal/xslog"
)

const modulePath = "github.com/garrettladley/tally/cmd/tally"

func upgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpgrade(cmd.Context(), upgrader{
				releases: github.NewClient(),
				current:  version.Get(),
				homebrew: version.IsHomebrew(),
				out:      cmd.OutOrStdout(),
				run:      runAttached,
			})
		},
	}
}

type releaseLookup interface {
	LatestRelease(ctx context.Context) (*github.Release, error)
}

// upgrader holds what an upgrade depends on so each branch can be exercised
// without touching the network or the installed binary.
type upgrader struct {
	releases releaseLookup
	current  string
	homebrew bool
	out      io.Writer
	run      func(*exec.Cmd) error
}

func runUpgrade(ctx context.Context, u upgrader) error {
	logger := xslog.FromContext(ctx)

	latest, err := u.releases.LatestRelease(ctx)
	if err != nil {
		logger.DebugContext(ctx, "release lookup failed", xslog.Error(err))
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	logger.DebugContext(ctx, "latest release",
		slog.String("current", u.current),
		slog.String("latest", latest.TagName),
	)

	if !version.IsNewer(u.current, latest.TagName) {
		fmt.Fprintf(u.out, "tally is up to date (%s)\n", u.current)
		return nil
	}

	fmt.Fprintf(u.out, "Updating tally %s → %s\n", u.current, latest.TagName)

	install := installCommand(ctx, u.homebrew)
	if err := u.run(install); err != nil {
		return fmt.Errorf("upgrade via %s failed: %w", install.Args[0], err)
	}
	fmt.Fprintln(u.out, "Successfully updated!")
	return nil
}

// installCommand picks the installer that owns the running binary.
func installCommand(ctx context.Context, homebrew bool) *exec.Cmd {
	if homebrew {
		return exec.CommandContext(ctx, "brew", "upgrade", "tally")
	}
	return exec.CommandContext(ctx, "go", "install", modulePath+"@latest")
}

func runAttached(cmd *exec.Cmd) error {
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
