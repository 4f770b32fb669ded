// Package cli implements the hanoisim command-line interface.
//
// The root command animates the puzzle with the configured constants. The
// remaining commands work without a display:
//   - solve: print the optimal move list and a tower occupancy chart
//   - export: write the board after some number of moves as SVG
//   - presets: list the built-in configurations
//
// All commands accept --verbose (-v) for debug logging; the logger travels
// on the command context.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/hanoisim/internal/config"
)

// Execute builds the command tree and runs it. Cancelling ctx (an
// interrupt, usually) closes the display and stops the generator.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool
	opts := &runOptions{}

	root := &cobra.Command{
		Use:           "hanoisim",
		Short:         "animated towers of hanoi",
		Long:          "hanoisim solves the Towers of Hanoi on one goroutine and animates every move, one at a time, on another.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnimation(cmd, opts)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	opts.register(root)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "animate the solution (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnimation(cmd, opts)
		},
	}
	opts.register(runCmd)

	root.AddCommand(runCmd, newSolveCmd(), newExportCmd(), newPresetsCmd())
	return root
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list built-in configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-12s %s\n", StyleTitle.Render(name), StyleDim.Render(fmt.Sprintf(
					"%d disks, %v delay, %s handoff, %dx%d",
					p.DiskCount, p.MoveDelay, p.Handoff, p.WindowWidth, p.WindowHeight,
				)))
			}
			return nil
		},
	}
}
