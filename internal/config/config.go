// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cropcost/core/coverage"
	"cropcost/core/intensity"
	"cropcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains the engine's tunable defaults
	Engine EngineConfig `json:"engine"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig lifts the engine's default constants out of the code so
// they are tunable without touching logic
type EngineConfig struct {
	// FarmAvgCostPerAcre is the cost-deviation baseline. Nil defers to
	// the intensity thresholds' built-in default.
	FarmAvgCostPerAcre *float64 `json:"farm_avg_cost_per_acre,omitempty"`

	// Bands are the coverage bucketing tolerance bands
	Bands coverage.Bands `json:"bands"`

	// Thresholds are the intensity model constants
	Thresholds intensity.Thresholds `json:"thresholds"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowSkipped includes excluded treatments in reports
	ShowSkipped bool `json:"show_skipped"`

	// ShowFactors includes the intensity factor breakdown
	ShowFactors bool `json:"show_factors"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			Bands:      coverage.DefaultBands(),
			Thresholds: intensity.DefaultThresholds(),
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowSkipped:   true,
			ShowFactors:   false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
