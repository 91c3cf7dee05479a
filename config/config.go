// Package config carries the small set of knobs that vary circuit analysis
// across the CLI and library entry points: reverse-sign mode and verbosity.
// It follows the functional-options constructor shape used throughout
// katalvlaran/lvlath's builder package, plus an optional YAML file loader
// for scripted/batch use.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds analysis-wide settings.
type Config struct {
	// ReverseSign enables SapWin-compatible sign convention: the companion
	// unity-valued edge added by AddVoltageSource, AddVCVS, and AddCCCS
	// carries coefficient -1 instead of +1.
	ReverseSign bool `yaml:"reverse_sign"`

	// Verbose raises logging to debug level.
	Verbose bool `yaml:"verbose"`
}

// Option configures a Config during construction.
type Option func(*Config)

// WithReverseSign sets ReverseSign.
func WithReverseSign(b bool) Option {
	return func(c *Config) { c.ReverseSign = b }
}

// WithVerbose sets Verbose.
func WithVerbose(b bool) Option {
	return func(c *Config) { c.Verbose = b }
}

// New builds a Config from the given options, defaulting to the original's
// shipped (non-reverse-sign, non-verbose) behavior.
func New(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Load decodes a Config from a YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}
