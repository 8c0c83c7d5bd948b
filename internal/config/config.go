// Package config holds triangles configuration, loaded from an optional yaml
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config holds all triangles configuration.
type Config struct {
	// Precision for numeric output; negative means minimal representation.
	Precision int `yaml:"precision"`

	// NoClobber refuses to overwrite an existing output file.
	NoClobber bool `yaml:"no_clobber"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Precision: -1,
		NoClobber: false,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a yaml config file, applies defaults for unset fields and then
// environment overrides. An empty path returns defaults plus env overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as yaml.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Environment overrides, below CLI flags in precedence:
//
//	TRIANGLES_PRECISION   output precision
//	TRIANGLES_NO_CLOBBER  refuse to overwrite output
//	TRIANGLES_LOG_LEVEL   log level
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TRIANGLES_PRECISION"); v != "" {
		if n, err := cast.ToIntE(v); err == nil {
			c.Precision = n
		}
	}
	if v := os.Getenv("TRIANGLES_NO_CLOBBER"); v != "" {
		if b, err := cast.ToBoolE(v); err == nil {
			c.NoClobber = b
		}
	}
	if v := os.Getenv("TRIANGLES_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
