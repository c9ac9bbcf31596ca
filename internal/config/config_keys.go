// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by "svglint config" and the MCP server, where config is
// addressed by dotted keys (e.g., "lint.ignore").
//
// List values are written and read as comma-separated strings. Setting a
// list key to "" clears it, restoring the built-in default.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{"lint.extensions", "lint.ignore", "log.audit"}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
// Unset list keys report an empty string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "lint.extensions":
		return strings.Join(c.Lint.Extensions, ","), nil
	case "lint.ignore":
		return strings.Join(c.Lint.Ignore, ","), nil
	case "log.audit":
		return strconv.FormatBool(c.Audit()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "lint.extensions":
		exts := splitList(value)
		for _, e := range exts {
			if err := checkExtension(e); err != nil {
				return err
			}
		}
		c.Lint.Extensions = exts
	case "lint.ignore":
		pats := splitList(value)
		tmp := Config{Lint: Lint{Ignore: pats}}
		if err := tmp.Validate(); err != nil {
			return err
		}
		c.Lint.Ignore = pats
	case "log.audit":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.audit must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Audit = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	m := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		m[k], _ = c.Get(k)
	}
	return m
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "lint.extensions":
		return len(c.Lint.Extensions) > 0
	case "lint.ignore":
		return len(c.Lint.Ignore) > 0
	case "log.audit":
		return c.Log.Audit != nil
	default:
		return false
	}
}

// splitList parses "a, b,,c" into [a b c]. An empty string yields nil.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
