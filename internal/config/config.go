package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the desk configuration
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Desk DeskConfig `yaml:"desk"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// DeskConfig contains settings for the interactive desk
type DeskConfig struct {
	Title       string `yaml:"title"`
	MaxIDLength int    `yaml:"max_id_length"`
}

const (
	defaultLogLevel    = "warn"
	defaultLogFormat   = "text"
	defaultTitle       = "Car Rental Service System"
	defaultMaxIDLength = 32
)

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()
	cfg.applyDefaults()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("DESK_TITLE"); val != "" {
		c.Desk.Title = val
	}
	if val := os.Getenv("DESK_MAX_ID_LENGTH"); val != "" {
		fmt.Sscanf(val, "%d", &c.Desk.MaxIDLength)
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
	if c.Desk.Title == "" {
		c.Desk.Title = defaultTitle
	}
	if c.Desk.MaxIDLength == 0 {
		c.Desk.MaxIDLength = defaultMaxIDLength
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}

	if c.Desk.MaxIDLength <= 0 {
		return fmt.Errorf("invalid max id length: %d", c.Desk.MaxIDLength)
	}

	return nil
}
