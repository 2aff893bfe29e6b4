package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phanxgames/xtween/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}
	root := &cobra.Command{
		Use:   "xtween",
		Short: "xtween plays and inspects tween scenarios",
		Long: `xtween loads YAML tween scenarios, simulates them at a fixed frame rate,
previews them live in the terminal and samples easing curves.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logging.NewWriter(cmd.ErrOrStderr(), logging.ParseLevel(a.logLevel))
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newSimulateCmd(a), newPreviewCmd(a), newCurvesCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
