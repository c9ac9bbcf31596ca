// lint.go implements the root command's lint run.
//
// Separated from root.go so cobra wiring and the lint lifecycle (option
// resolution, progress, audit, exit status) can be read independently.
//
// Design: Option precedence is flag > config > built-in default. A flag
// counts only when given, so "--ext" on the command line replaces the
// configured list rather than extending it.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jpl-au/svglint/extension"
	"github.com/jpl-au/svglint/internal/config"
	"github.com/jpl-au/svglint/internal/log"
	"github.com/jpl-au/svglint/internal/progress"
	"github.com/jpl-au/svglint/internal/walk"
	"github.com/spf13/cobra"
)

// errLintFailed signals an invalid tree. The diagnostics have already been
// printed, so cobra is told not to print it.
var errLintFailed = errors.New("lint failed")

func runLint(c *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	opts, err := lintOptions(c)
	if err != nil {
		// A bad flag must still fail the run, JSON or not.
		if JSON() {
			_ = PrintJSON(map[string]string{"error": err.Error()})
			c.SilenceErrors = true
		}
		c.SilenceUsage = true
		return err
	}

	var w io.Writer = Out()
	if JSON() {
		w = nil
	}

	if !quiet && !JSON() {
		sp := progress.NewSpinner("linting")
		sp.Start()
		defer sp.Stop()
		opts.Progress = sp
	}

	if abs, err := filepath.Abs(root); err == nil {
		log.SetProject(abs)
	}

	res, err := walk.Run(c.Context(), w, root, opts)
	if err != nil {
		err = fmt.Errorf("lint interrupted: %w", err)
	} else if !res.Valid {
		err = errLintFailed
	}

	log.Event("cli:lint", "lint").
		Path(root).
		Detail("files", res.Files).
		Detail("invalid", res.Invalid).
		Write(err)

	if JSON() {
		if jerr := PrintJSON(res); jerr != nil {
			return jerr
		}
	}

	if err != nil {
		c.SilenceUsage = true
		if errors.Is(err, errLintFailed) || JSON() {
			c.SilenceErrors = true
		}
	}
	return err
}

// lintOptions resolves walk options from flags, then config, then defaults.
func lintOptions(c *cobra.Command) (walk.Options, error) {
	opts := walk.Options{
		Rules:  extContext.Rules(),
		Ignore: extContext.Config().Ignore(),
	}

	// Flag values go through the same checks as config values.
	var flagCfg config.Config
	if c.Flags().Changed(extension.FlagExt) {
		flagCfg.Lint.Extensions = exts
		opts.Extensions = append([]string{}, exts...)
	}
	if c.Flags().Changed(extension.FlagIgnore) {
		flagCfg.Lint.Ignore = ignores
		opts.Ignore = append([]string{}, ignores...)
	}
	if err := flagCfg.Validate(); err != nil {
		return walk.Options{}, fmt.Errorf("invalid flag: %w", err)
	}
	return opts, nil
}
