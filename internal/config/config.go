// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"gomix/internal/logging"
)

// Environment variables that override file-based configuration. They may be
// set in the process environment or in a .env file in the working directory.
const (
	EnvConfigPath  = "GOMIX_CONFIG"
	EnvHistoryPath = "GOMIX_HISTORY"
	EnvLogLevel    = "GOMIX_LOG_LEVEL"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Materials contains default material properties
	Materials MaterialsConfig `json:"materials"`

	// Rates contains standing material rates for cost estimates
	Rates RatesConfig `json:"rates"`

	// History contains mix history settings
	History HistoryConfig `json:"history"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// MaterialsConfig carries the material properties assumed when a design
// request does not specify them. The values are the usual laboratory
// assumptions for OPC and crushed aggregate.
type MaterialsConfig struct {
	// CementSG is the specific gravity of cement
	CementSG float64 `json:"cement_sg"`

	// CoarseAggregateSG is the specific gravity of coarse aggregate
	CoarseAggregateSG float64 `json:"coarse_aggregate_sg"`

	// FineAggregateSG is the specific gravity of fine aggregate
	FineAggregateSG float64 `json:"fine_aggregate_sg"`

	// AdmixtureSG is the specific gravity of the chemical admixture
	AdmixtureSG float64 `json:"admixture_sg"`

	// FlyAshSG is the specific gravity of fly ash
	FlyAshSG float64 `json:"fly_ash_sg"`

	// AbsorptionCoarse is the coarse aggregate water absorption, percent
	AbsorptionCoarse float64 `json:"absorption_coarse_pct"`

	// AbsorptionFine is the fine aggregate water absorption, percent
	AbsorptionFine float64 `json:"absorption_fine_pct"`

	// SurfaceMoistureCoarse is the coarse aggregate surface moisture, percent
	SurfaceMoistureCoarse float64 `json:"surface_moisture_coarse_pct"`

	// SurfaceMoistureFine is the fine aggregate surface moisture, percent
	SurfaceMoistureFine float64 `json:"surface_moisture_fine_pct"`
}

// RatesConfig carries standing unit rates for the cost estimator. A zero
// rate means the material is priced only when given on the command line.
type RatesConfig struct {
	// CementPerBag is the rate per 50 kg cement bag
	CementPerBag float64 `json:"cement_per_bag"`

	// WaterPerCubicMetre is the rate per m³ of water
	WaterPerCubicMetre float64 `json:"water_per_m3"`

	// FineAggregatePerCubicMetre is the rate per m³ of fine aggregate
	FineAggregatePerCubicMetre float64 `json:"fine_aggregate_per_m3"`

	// CoarseAggregatePerCubicMetre is the rate per m³ of coarse aggregate
	CoarseAggregatePerCubicMetre float64 `json:"coarse_aggregate_per_m3"`

	// AdmixturePerKg is the rate per kg of chemical admixture
	AdmixturePerKg float64 `json:"admixture_per_kg"`

	// FlyAshPerKg is the rate per kg of fly ash
	FlyAshPerKg float64 `json:"fly_ash_per_kg"`
}

// HistoryConfig contains mix history settings
type HistoryConfig struct {
	// Path is the history file location
	Path string `json:"path"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	historyPath := filepath.Join(homeDir, ".gomix", "mix_history.json")

	return &Config{
		Version: "1.0",
		Materials: MaterialsConfig{
			CementSG:              3.15,
			CoarseAggregateSG:     2.74,
			FineAggregateSG:       2.74,
			AdmixtureSG:           1.145,
			FlyAshSG:              2.2,
			AbsorptionCoarse:      0.5,
			AbsorptionFine:        1.0,
			SurfaceMoistureCoarse: 0,
			SurfaceMoistureFine:   0,
		},
		Rates: RatesConfig{},
		History: HistoryConfig{
			Path: historyPath,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".gomix", "config.json")
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

// LoadEnv reads a .env file when one exists and applies the GOMIX_*
// environment overrides on top of the file-based configuration. The
// returned config is also installed as the global instance.
func LoadEnv() (*Config, error) {
	// A missing .env file is not an error; explicit env vars still apply.
	_ = godotenv.Load()

	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = DefaultPath()
	}

	config, err := Load(path)
	if err != nil {
		return nil, err
	}

	if history := os.Getenv(EnvHistoryPath); history != "" {
		config.History.Path = history
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		config.Logging.Level = level
	}

	Set(config)
	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
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
