// Package config loads labchart settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/junkd0g/labchart/internal/chart"
	"github.com/junkd0g/labchart/internal/codes"
	"github.com/junkd0g/labchart/internal/dashboard"
)

// EnvConfigPath names the environment variable holding the config path.
const EnvConfigPath = "LABCHART_CONFIG"

// Config is the top-level configuration.
type Config struct {
	Codes     []codes.Entry        `yaml:"codes"`
	Chart     chart.Options        `yaml:"chart"`
	Dashboard dashboard.HTMLConfig `yaml:"dashboard"`
	Raster    RasterConfig         `yaml:"raster"`
	Log       LogConfig            `yaml:"log"`
}

// RasterConfig sizes PNG and SVG output.
type RasterConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig selects the log level and formatter.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Codes:     append([]codes.Entry(nil), codes.DefaultEntries...),
		Chart:     chart.DefaultOptions(),
		Dashboard: dashboard.DefaultConfig(),
		Raster:    RasterConfig{Width: 800, Height: 400},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, err := cfg.Table(); err != nil {
		return nil, fmt.Errorf("invalid codes: %w", err)
	}

	return cfg, nil
}

// FromEnv loads the file named by LABCHART_CONFIG, if set.
func FromEnv() (*Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

// Table builds the code table.
func (c *Config) Table() (*codes.Table, error) {
	return codes.NewTable(c.Codes)
}
