/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: The root command is the linter itself ("svglint [path]"), so the
// common case needs no subcommand. PersistentPreRunE loads config lazily;
// commands in noInitCommands skip it so a broken config file can still be
// inspected and repaired with "svglint config".

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/jpl-au/svglint/internal/config"
	"github.com/jpl-au/svglint/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "svglint [path]",
	Short: "Lint a tree of SVG files",
	Long: `Lint every SVG file under path (default: the current directory).

Each file must have an <svg> root element with a viewBox attribute, and no
element may be an <image> or carry a style or inkscape:version attribute.
One line is printed per invalid file; the exit code is 1 if any file fails.

  svglint                    # lint the current directory
  svglint icons/             # lint a directory
  svglint logo.svg           # lint a single file
  svglint -e svg -e svgz .   # lint more than one extension
  svglint -i dist -i '.*' .  # skip directories by name or glob
  svglint -o json .          # machine-readable report`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if !noInitCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of
// root), or the root's own name when cmd is the root.
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle. The audit
// log is opened only when enabled in config. Interrupts cancel an in-flight
// walk. Exit code 1 indicates an invalid tree or an error.
func Execute() {
	if cfg, err := config.Load(); err == nil && cfg.Audit() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
	}

	registerExtensions()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	// os.Exit skips deferred calls.
	log.Close()
	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
