// Package config provides configuration loading and management.
package config

import "strings"

// Config holds zmod CLI configuration from the config file and environment.
type Config struct {
	// Base is the default main-tree path used when --base is not given.
	Base string `mapstructure:"base"`

	// OutDir is the default directory for generated artifacts.
	OutDir string `mapstructure:"outDir"`

	// Log holds logging preferences.
	Log LogConfig `mapstructure:"log"`
}

// LogConfig holds logging preferences from the config file.
type LogConfig struct {
	// Timestamps toggles timestamps in log output. Nil means default.
	Timestamps *bool `mapstructure:"timestamps"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.OutDir == "" {
		out.OutDir = "."
	}
	return &out
}

// Validate checks the configuration for obviously broken values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Base != "" && strings.TrimSpace(c.Base) == "" {
		errs = append(errs, ValidationError{
			Field:   "base",
			Message: "must not be whitespace only",
		})
	}
	if c.OutDir != "" && strings.TrimSpace(c.OutDir) == "" {
		errs = append(errs, ValidationError{
			Field:   "outDir",
			Message: "must not be whitespace only",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
