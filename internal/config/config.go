// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"package-audit/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Update contains price update policy defaults
	Update UpdateConfig `json:"update"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Catalog contains catalog configuration
	Catalog CatalogConfig `json:"catalog"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// UpdateConfig contains price update policy defaults
type UpdateConfig struct {
	// AutoUpdate applies in-range price updates without review
	AutoUpdate bool `json:"auto_update"`

	// MinDifferencePercent is the smallest difference worth updating
	MinDifferencePercent float64 `json:"min_difference_percent"`

	// MaxDifferencePercent is the largest difference eligible for auto update
	MaxDifferencePercent float64 `json:"max_difference_percent"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// ShowBreakdown shows the per-component intrinsic breakdown
	ShowBreakdown bool `json:"show_breakdown"`
}

// CatalogConfig contains catalog-related settings
type CatalogConfig struct {
	// PricebookPath is an optional HCL pricebook override file
	PricebookPath string `json:"pricebook_path,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Update: UpdateConfig{
			AutoUpdate:           false,
			MinDifferencePercent: 5,
			MaxDifferencePercent: 50,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowBreakdown: true,
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
