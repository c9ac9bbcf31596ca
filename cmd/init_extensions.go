/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. The config is loaded once and shared across all
// extensions, and the lint itself, via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/svglint/extension"
	"github.com/jpl-au/svglint/internal/config"
)

// noInitCommands lists commands that run without loading config. config
// must stay usable when the file it edits is malformed.
var noInitCommands = map[string]bool{
	"config":     true,
	"guide":      true,
	"version":    true,
	"help":       true,
	"completion": true,
}

var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads config and injects the shared context into every
// Initializable extension.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// Context returns the shared extension context. Nil until initialisation
// has run.
func Context() extension.Context {
	return extContext
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}
