// Package all imports all built-in svglint extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/svglint/extension/core"
	_ "github.com/jpl-au/svglint/extension/rules"
)
