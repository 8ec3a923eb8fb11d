package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/tally/internal/config"
	"github.com/garrettladley/tally/internal/version"
	"github.com/garrettladley/tally/internal/xslog"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "A shared tally board in your terminal",
		Version: version.Get(),
		RunE:    runTUI,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			ctx := withConfig(cmd.Context(), cfg)
			cmd.SetContext(xslog.WithLogger(ctx, cliLogger(cfg)))
			return nil
		},
	}

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(upgradeCmd())
	addDevCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
