// Package config handles configuration loading and validation for
// gridsheet.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// Theme names a built-in palette.
	Theme    string   `yaml:"theme"`
	Viewport Viewport `yaml:"viewport"`
	Sizes    Sizes    `yaml:"sizes"`
	Log      Log      `yaml:"log"`
}

// Viewport sets how many blocks each axis window keeps mounted.
type Viewport struct {
	RowBlocks int `yaml:"row_blocks"`
	ColBlocks int `yaml:"col_blocks"`
}

// Sizes sets the default cell geometry in content pixels.
type Sizes struct {
	RowHeight   float64 `yaml:"row_height"`
	ColumnWidth float64 `yaml:"column_width"`
}

// Log configures the zerolog output.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: "tokyo-night",
		Viewport: Viewport{
			RowBlocks: 10,
			ColBlocks: 4,
		},
		Sizes: Sizes{
			RowHeight:   25,
			ColumnWidth: 100,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads configuration from the given path. A missing file is not an
// error; it returns the defaults so a fresh install works without an
// init step.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Viewport.RowBlocks == 0 {
		c.Viewport.RowBlocks = defaults.Viewport.RowBlocks
	}
	if c.Viewport.ColBlocks == 0 {
		c.Viewport.ColBlocks = defaults.Viewport.ColBlocks
	}
	if c.Sizes.RowHeight == 0 {
		c.Sizes.RowHeight = defaults.Sizes.RowHeight
	}
	if c.Sizes.ColumnWidth == 0 {
		c.Sizes.ColumnWidth = defaults.Sizes.ColumnWidth
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}
