// flags.go defines constants for CLI flag names shared between commands.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag.

package extension

const (
	// Boolean flags

	FlagLocal = "local" // Use local config scope
	FlagQuiet = "quiet" // Suppress the progress indicator

	// String slice flags

	FlagExt    = "ext"    // File extension to lint
	FlagIgnore = "ignore" // Directory name or glob to skip
)
