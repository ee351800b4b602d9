// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration: log level and the data the
// array demos operate on.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/drills/internal/demo"
	"github.com/katalvlaran/drills/internal/logging"
	"github.com/katalvlaran/drills/matrix"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides Logging.Level when set.
const EnvLogLevel = "DRILLS_LOG_LEVEL"

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of drills.yaml.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Inputs  Inputs        `yaml:"inputs"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Inputs holds the demo fixtures.
type Inputs struct {
	Sort       []int    `yaml:"sort"`
	Duplicates []int    `yaml:"duplicates"`
	Unique     []int    `yaml:"unique"`
	CommonA    []int    `yaml:"common_a"`
	CommonB    []int    `yaml:"common_b"`
	Matrix     [][]int  `yaml:"matrix"`
	SwapA      int      `yaml:"swap_a"`
	SwapB      int      `yaml:"swap_b"`
	Names      []string `yaml:"names"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	in := demo.DefaultInput()

	return &Config{
		Logging: LoggingConfig{Level: logging.DefaultLevel},
		Inputs: Inputs{
			Sort:       in.Sort,
			Duplicates: in.Duplicates,
			Unique:     in.Unique,
			CommonA:    in.CommonA,
			CommonB:    in.CommonB,
			Matrix:     in.Matrix,
			SwapA:      in.SwapA,
			SwapB:      in.SwapB,
			Names:      in.Names,
		},
	}
}

// Load reads configuration from a YAML file over the defaults.
// A missing file yields the defaults. The environment override is applied
// last, then the result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the log level and that the matrix holds at least one element.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	if err := matrix.Validate(c.Inputs.Matrix); err != nil {
		return fmt.Errorf("%w: inputs.matrix: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DemoInput converts the configured fixtures into a demo.Input.
func (c *Config) DemoInput() demo.Input {
	in := c.Inputs

	return demo.Input{
		Sort:       in.Sort,
		Duplicates: in.Duplicates,
		Unique:     in.Unique,
		CommonA:    in.CommonA,
		CommonB:    in.CommonB,
		Matrix:     in.Matrix,
		SwapA:      in.SwapA,
		SwapB:      in.SwapB,
		Names:      in.Names,
	}
}
