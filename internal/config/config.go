// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ecotrack/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Engine contains estimation engine settings
	Engine EngineConfig `json:"engine"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// EngineConfig contains estimation engine settings
type EngineConfig struct {
	// FactorsPath is the path to a factor catalog file (.hcl or .json).
	// Empty means the embedded default catalog.
	FactorsPath string `json:"factors_path,omitempty"`

	// SuggestionsPath is the path to a suggestion rule file (.hcl or .json).
	// Empty means the embedded default rules.
	SuggestionsPath string `json:"suggestions_path,omitempty"`

	// Predictor contains energy predictor settings
	Predictor PredictorConfig `json:"predictor"`
}

// PredictorConfig contains the fitted energy model parameters.
// The offline training pipeline exports these; the engine only runs
// inference.
type PredictorConfig struct {
	// Enabled switches the predictor on. When false the refinement
	// overlay skips the energy override rule.
	Enabled bool `json:"enabled"`

	// Intercept is the model intercept in kWh per month
	Intercept float64 `json:"intercept"`

	// HouseSizeCoef is kWh per square meter
	HouseSizeCoef float64 `json:"house_size_coef"`

	// OccupantCoef is kWh per occupant
	OccupantCoef float64 `json:"occupant_coef"`

	// ACHourCoef is kWh per daily AC hour
	ACHourCoef float64 `json:"ac_hour_coef"`

	// FloorKwh is the minimum prediction
	FloorKwh float64 `json:"floor_kwh"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Engine: EngineConfig{
			Predictor: PredictorConfig{
				Enabled:       true,
				Intercept:     200,
				HouseSizeCoef: 2,
				OccupantCoef:  50,
				ACHourCoef:    2,
				FloorKwh:      100,
			},
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
