// Package config provides reading and writing of svglint configuration.
// Supports both global (~/.svglint/config.yaml) and local (.svglint/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
//
// No config file is required. Every key has a built-in default, and a run
// without any config behaves exactly like a run with an empty one.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpl-au/svglint/internal/glob"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.svglint/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .svglint/config.yaml
	ScopeLocal
)

// Lint holds walk-related options. Empty lists mean "use the default".
type Lint struct {
	Extensions []string `yaml:"extensions,omitempty"`
	Ignore     []string `yaml:"ignore,omitempty"`
}

// Log holds audit log options.
type Log struct {
	Audit *bool `yaml:"audit,omitempty"`
}

// Config contains configuration for svglint.
type Config struct {
	Lint Lint `yaml:"lint,omitempty"`
	Log  Log  `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are usable.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	for _, e := range c.Lint.Extensions {
		if err := checkExtension(e); err != nil {
			return err
		}
	}
	for _, p := range c.Lint.Ignore {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: lint.ignore entries must not be empty", ErrInvalidValue)
		}
	}
	if err := glob.Check(c.Lint.Ignore); err != nil {
		return fmt.Errorf("%w: lint.ignore: %w", ErrInvalidValue, err)
	}
	return nil
}

func checkExtension(e string) error {
	switch {
	case e == "":
		return fmt.Errorf("%w: lint.extensions entries must not be empty", ErrInvalidValue)
	case strings.HasPrefix(e, "."):
		return fmt.Errorf("%w: lint.extensions entry %q must not start with a dot", ErrInvalidValue, e)
	case strings.ContainsAny(e, `/\`):
		return fmt.Errorf("%w: lint.extensions entry %q must not contain a path separator", ErrInvalidValue, e)
	}
	return nil
}

// Extensions returns the configured extensions, or nil when unset
// (callers then fall back to the rule tables' defaults).
func (c *Config) Extensions() []string {
	if len(c.Lint.Extensions) == 0 {
		return nil
	}
	return c.Lint.Extensions
}

// Ignore returns the configured ignore patterns, or nil when unset.
func (c *Config) Ignore() []string {
	if len(c.Lint.Ignore) == 0 {
		return nil
	}
	return c.Lint.Ignore
}

// Audit returns whether runs are recorded in the audit log (defaults to false).
func (c *Config) Audit() bool {
	if c.Log.Audit == nil {
		return false
	}
	return *c.Log.Audit
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(".svglint", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.svglint/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".svglint", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	return load(true)
}

// LoadUnchecked is Load without value validation. The config command uses
// it so a file holding an invalid value can still be read and repaired.
func LoadUnchecked() (*Config, error) {
	return load(false)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	return loadScope(scope, true)
}

// LoadScopeUnchecked is LoadScope without value validation.
func LoadScopeUnchecked(scope Scope) (*Config, error) {
	return loadScope(scope, false)
}

func load(check bool) (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return loadScope(ScopeLocal, check)
	}
	return loadScope(ScopeGlobal, check)
}

func loadScope(scope Scope, check bool) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if !check {
		return &cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w\n\nTo fix: svglint config <key> \"\" restores a key's default", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
