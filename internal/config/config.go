// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Paths
	TownsFile       string `json:"towns_file,omitempty"`       // Path to a JSON file of town profiles
	PreferencesFile string `json:"preferences_file,omitempty"` // Path to a JSON file of user preferences

	// Identity
	UserID string `json:"user_id,omitempty"` // User UUID (required for DB-based runs)

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Ranking behavior
	Limit              int     `json:"limit,omitempty"`                // Maximum number of ranked towns to return
	MinHealthcareScore float64 `json:"min_healthcare_score,omitempty"` // Pre-filter: drop towns below this healthcare score
	MinSafetyScore     float64 `json:"min_safety_score,omitempty"`     // Pre-filter: drop towns below this safety score
	Verbose            bool    `json:"verbose,omitempty"`              // Print detailed scoring breakdowns

	// Weights overrides the default category weighting when present.
	Weights *WeightsConfig `json:"weights,omitempty"`
}

// WeightsConfig mirrors the six category weights as they appear in a config
// file. Kept separate from the scoring package so config stays a leaf package.
type WeightsConfig struct {
	Region         int `json:"region"`
	Climate        int `json:"climate"`
	Culture        int `json:"culture"`
	Hobbies        int `json:"hobbies"`
	Administration int `json:"administration"`
	Budget         int `json:"budget"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.MinHealthcareScore < 0 || c.MinHealthcareScore > 10 {
		return fmt.Errorf("config error: 'min_healthcare_score' must be between 0 and 10")
	}
	if c.MinSafetyScore < 0 || c.MinSafetyScore > 10 {
		return fmt.Errorf("config error: 'min_safety_score' must be between 0 and 10")
	}

	if c.Weights != nil {
		sum := c.Weights.Region + c.Weights.Climate + c.Weights.Culture +
			c.Weights.Hobbies + c.Weights.Administration + c.Weights.Budget
		if sum != 100 {
			return fmt.Errorf("config error: 'weights' must sum to 100, got %d", sum)
		}
	}

	// Validate file paths exist (if specified)
	if c.TownsFile != "" {
		if _, err := os.Stat(c.TownsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: towns file not found: %s", c.TownsFile)
		}
	}
	if c.PreferencesFile != "" {
		if _, err := os.Stat(c.PreferencesFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: preferences file not found: %s", c.PreferencesFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.TownsFile == "" {
		result.TownsFile = defaults.TownsFile
	}
	if result.PreferencesFile == "" {
		result.PreferencesFile = defaults.PreferencesFile
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}

	// Float fields: use default if zero
	if result.MinHealthcareScore == 0 {
		result.MinHealthcareScore = defaults.MinHealthcareScore
	}
	if result.MinSafetyScore == 0 {
		result.MinSafetyScore = defaults.MinSafetyScore
	}

	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
