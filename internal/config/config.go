package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration
type Config struct {
	// Library roots; empty means not configured
	MoviesPath string `toml:"movies_path"`
	TVPath     string `toml:"tv_path"`

	// Serve a fixed demo catalog instead of indexing
	Demo bool `toml:"demo"`

	// Server
	Host string `toml:"host"`
	Port int    `toml:"port"`

	// Logging
	Verbosity int `toml:"verbosity"`

	// Environment
	Environment string `toml:"environment"`
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Host:        "0.0.0.0",
		Port:        8080,
		Environment: "development",
	}
}

// Load builds the configuration from defaults, an optional TOML file and
// environment variables, in increasing order of precedence. When path is
// empty, CAROLUS_CONFIG is consulted; a missing file at an explicit path is
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CAROLUS_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.MoviesPath = getEnv("CAROLUS_MOVIES_PATH", cfg.MoviesPath)
	cfg.TVPath = getEnv("CAROLUS_TV_PATH", cfg.TVPath)
	cfg.Host = getEnv("HOST", cfg.Host)
	cfg.Port = getEnvAsInt("PORT", cfg.Port)
	cfg.Verbosity = getEnvAsInt("CAROLUS_LOG_VERBOSITY", cfg.Verbosity)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	if c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Environment)
	}

	if c.Verbosity < 0 {
		return errors.New("verbosity must not be negative")
	}

	for name, path := range map[string]string{"movies path": c.MoviesPath, "tv path": c.TVPath} {
		if path != "" && strings.TrimSpace(path) == "" {
			return fmt.Errorf("%s must not be blank", name)
		}
	}

	return nil
}

// Addr returns the host:port the server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
