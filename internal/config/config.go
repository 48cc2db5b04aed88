// Package config loads the settings for a geodes run.
//
// Values are resolved with priority env > file > defaults. The file may be YAML
// or JSON; a missing file is not an error.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config contains every setting the command reads.
type Config struct {
	Solve         SolveConfig         `json:"solve" yaml:"solve"`
	Cache         CacheConfig         `json:"cache" yaml:"cache"`
	Observability ObservabilityConfig `json:"observability" yaml:"observability"`
}

// SolveConfig controls the search itself.
type SolveConfig struct {
	WeightedHorizon   int `json:"weighted_horizon" yaml:"weighted_horizon" validate:"gte=1"`
	ProductHorizon    int `json:"product_horizon" yaml:"product_horizon" validate:"gte=1"`
	ProductBlueprints int `json:"product_blueprints" yaml:"product_blueprints" validate:"gte=1"`

	// FrontierLimit caps the number of states per minute; 0 disables the cap.
	FrontierLimit int `json:"frontier_limit" yaml:"frontier_limit" validate:"gte=0"`

	// Pruning is one of "midpoint", "none" or "beam".
	Pruning   string `json:"pruning" yaml:"pruning" validate:"oneof=midpoint none beam"`
	BeamWidth int    `json:"beam_width" yaml:"beam_width" validate:"gte=1"`
}

// CacheConfig controls the on-disk yield cache.
type CacheConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Dir     string `json:"dir" yaml:"dir" validate:"required_if=Enabled true"`
}

// ObservabilityConfig controls logging and tracing.
type ObservabilityConfig struct {
	LogLevel string `json:"log_level" yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogJSON  bool   `json:"log_json" yaml:"log_json"`
	Tracing  bool   `json:"tracing" yaml:"tracing"`
}

var validate = validator.New()

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Solve: SolveConfig{
			WeightedHorizon:   24,
			ProductHorizon:    32,
			ProductBlueprints: 3,
			FrontierLimit:     0,
			Pruning:           "midpoint",
			BeamWidth:         20000,
		},
		Cache: CacheConfig{
			Enabled: false,
			Dir:     "",
		},
		Observability: ObservabilityConfig{
			LogLevel: "info",
			LogJSON:  false,
			Tracing:  false,
		},
	}
}

// Load reads configPath (optional, may be empty), applies GEODES_* environment
// overrides and validates the result.
func Load(configPath string) (Config, error) {
	config := Default()

	if configPath != "" {
		if err := loadConfigFile(configPath, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	loadConfigFromEnv(&config)

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func loadConfigFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, config); err != nil {
		if jsonErr := json.Unmarshal(data, config); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

func loadConfigFromEnv(config *Config) {
	if v := os.Getenv("GEODES_WEIGHTED_HORIZON"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Solve.WeightedHorizon = i
		}
	}
	if v := os.Getenv("GEODES_PRODUCT_HORIZON"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Solve.ProductHorizon = i
		}
	}
	if v := os.Getenv("GEODES_PRODUCT_BLUEPRINTS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Solve.ProductBlueprints = i
		}
	}
	if v := os.Getenv("GEODES_FRONTIER_LIMIT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Solve.FrontierLimit = i
		}
	}
	if v := os.Getenv("GEODES_PRUNING"); v != "" {
		config.Solve.Pruning = v
	}
	if v := os.Getenv("GEODES_BEAM_WIDTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Solve.BeamWidth = i
		}
	}

	if v := os.Getenv("GEODES_CACHE_DIR"); v != "" {
		config.Cache.Dir = v
		config.Cache.Enabled = true
	}
	if v := os.Getenv("GEODES_CACHE_ENABLED"); v != "" {
		config.Cache.Enabled = v == "true" || v == "1"
	}

	if v := os.Getenv("GEODES_LOG_LEVEL"); v != "" {
		config.Observability.LogLevel = v
	}
	if v := os.Getenv("GEODES_LOG_JSON"); v != "" {
		config.Observability.LogJSON = v == "true" || v == "1"
	}
	if v := os.Getenv("GEODES_TRACING"); v != "" {
		config.Observability.Tracing = v == "true" || v == "1"
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	return validate.Struct(c)
}
