// Package config loads application configuration from an optional JSON file
// and SCHEMA_WIZARD_-prefixed environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "SCHEMA_WIZARD_"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `json:"database" envPrefix:"SCHEMA_WIZARD_"`
	Logging  LoggingConfig  `json:"logging"  envPrefix:"SCHEMA_WIZARD_"`
	Trainer  TrainerConfig  `json:"trainer"  envPrefix:"SCHEMA_WIZARD_"`
}

// DatabaseConfig represents project-store configuration
type DatabaseConfig struct {
	Path           string `json:"path"            env:"DB_PATH"            envDefault:"~/.config/schema-wizard/projects.db"`
	MaxConnections int    `json:"max_connections" env:"DB_MAX_CONNECTIONS" envDefault:"10"`
	MaxIdleConns   int    `json:"max_idle_conns"  env:"DB_MAX_IDLE_CONNS"  envDefault:"5"`
	QueryTimeout   string `json:"query_timeout"   env:"DB_QUERY_TIMEOUT"   envDefault:"30s"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `json:"level"  env:"LOG_LEVEL"  envDefault:"info"`   // debug, info, warn, error
	Format string `json:"format" env:"LOG_FORMAT" envDefault:"text"`   // text, json
	Output string `json:"output" env:"LOG_OUTPUT" envDefault:"stderr"` // stdout, stderr, file
	File   string `json:"file"   env:"LOG_FILE"   envDefault:"~/.config/schema-wizard/logs/app.log"`
}

// TrainerConfig controls the simulated training backend
type TrainerConfig struct {
	Delay        string `json:"delay"         env:"TRAINER_DELAY"         envDefault:"2s"`
	PollInterval string `json:"poll_interval" env:"TRAINER_POLL_INTERVAL" envDefault:"200ms"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	configPath := getConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		if err := loadConfigFromFile(config, configPath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Environment overrides and defaults
	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadConfigFromFile loads configuration from a JSON file
func loadConfigFromFile(config *Config, configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf(
			"invalid log level: %s (must be debug, info, warn, or error)",
			config.Logging.Level,
		)
	}

	validLogFormats := map[string]bool{
		"text": true, "json": true,
	}
	if !validLogFormats[strings.ToLower(config.Logging.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", config.Logging.Format)
	}

	validLogOutputs := map[string]bool{
		"stdout": true, "stderr": true, "file": true,
	}
	if !validLogOutputs[strings.ToLower(config.Logging.Output)] {
		return fmt.Errorf(
			"invalid log output: %s (must be stdout, stderr, or file)",
			config.Logging.Output,
		)
	}

	if _, err := time.ParseDuration(config.Database.QueryTimeout); err != nil {
		return fmt.Errorf("invalid database query timeout: %s", config.Database.QueryTimeout)
	}

	if _, err := time.ParseDuration(config.Trainer.Delay); err != nil {
		return fmt.Errorf("invalid trainer delay: %s", config.Trainer.Delay)
	}

	if _, err := time.ParseDuration(config.Trainer.PollInterval); err != nil {
		return fmt.Errorf("invalid trainer poll interval: %s", config.Trainer.PollInterval)
	}

	if config.Database.MaxConnections <= 0 {
		return fmt.Errorf(
			"database max connections must be positive: %d",
			config.Database.MaxConnections,
		)
	}

	return nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() string {
	if configPath := os.Getenv(envPrefix + "CONFIG"); configPath != "" {
		return expandPath(configPath)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}

	return filepath.Join(homeDir, ".config", "schema-wizard", "config.json")
}

// expandPath expands ~ to home directory in file paths
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return homeDir
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// ExpandAllPaths expands all paths in the configuration
func (c *Config) ExpandAllPaths() {
	c.Database.Path = expandPath(c.Database.Path)
	c.Logging.File = expandPath(c.Logging.File)
}

// TrainerDelay returns the parsed trainer delay, falling back to two
// seconds if the value is somehow invalid after validation.
func (c *Config) TrainerDelay() time.Duration {
	d, err := time.ParseDuration(c.Trainer.Delay)
	if err != nil {
		return 2 * time.Second
	}

	return d
}

// TrainerPollInterval returns the parsed status poll interval.
func (c *Config) TrainerPollInterval() time.Duration {
	d, err := time.ParseDuration(c.Trainer.PollInterval)
	if err != nil {
		return 200 * time.Millisecond
	}

	return d
}
