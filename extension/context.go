// context.go defines the Context interface through which extensions read
// the loaded configuration and the rule tables it implies.
//
// Separated from extension.go to isolate dependency injection concerns.
//
// Design: Extensions receive Context during Init(), not at construction.
// Registration happens in init() before any config file has been read.

package extension

import (
	"github.com/jpl-au/svglint/internal/config"
	"github.com/jpl-au/svglint/internal/validate"
)

// Context provides extensions controlled access to shared state.
type Context interface {
	// Config returns the loaded user configuration.
	Config() *config.Config

	// Rules returns the rule tables in effect, with configured extensions
	// applied. Each call returns a fresh copy.
	Rules() *validate.Rules
}

type extContext struct {
	cfg *config.Config
}

// NewContext creates a context around cfg. A nil cfg behaves as an empty
// configuration.
func NewContext(cfg *config.Config) Context {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &extContext{cfg: cfg}
}

func (c *extContext) Config() *config.Config {
	return c.cfg
}

func (c *extContext) Rules() *validate.Rules {
	r := validate.DefaultRules()
	if exts := c.cfg.Extensions(); exts != nil {
		r.Extensions = append([]string(nil), exts...)
	}
	return r
}
