// SPDX-License-Identifier: MIT

// Package config holds the bnload command configuration, read from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Input formats accepted by Input.Format.
const (
	FormatAuto   = "auto"
	FormatBIF    = "bif"
	FormatXMLBIF = "xmlbif"
)

// Config is the root of the YAML document.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder, stack traces on warn
}

// InputConfig configures network loading.
type InputConfig struct {
	Format  string `yaml:"format"`  // auto, bif, xmlbif
	Workers int    `yaml:"workers"` // files loaded in parallel
}

// OutputConfig configures rendering.
type OutputConfig struct {
	Precision int `yaml:"precision"` // digits after the decimal point
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn"},
		Input:   InputConfig{Format: FormatAuto, Workers: 4},
		Output:  OutputConfig{Precision: 4},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// BNLOAD_LOG_LEVEL, when set, overrides logging.level.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if lvl := os.Getenv("BNLOAD_LOG_LEVEL"); lvl != "" {
		cfg.Logging.Level = lvl
	}

	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if _, err := c.ZapLevel(); err != nil {
		return err
	}
	switch c.Input.Format {
	case FormatAuto, FormatBIF, FormatXMLBIF:
	default:
		return fmt.Errorf("%w: input.format %q (want auto, bif or xmlbif)", ErrInvalidConfig, c.Input.Format)
	}
	if c.Input.Workers < 1 {
		return fmt.Errorf("%w: input.workers %d < 1", ErrInvalidConfig, c.Input.Workers)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("%w: output.precision %d outside [0,17]", ErrInvalidConfig, c.Output.Precision)
	}

	return nil
}

// ZapLevel parses logging.level.
func (c *Config) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}

	return lvl, nil
}
