// Package config loads CLI-level configuration: which model and endpoint
// region to use, retry behavior, and logging. Connection and credential
// material lives in the settings package instead.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all CLI configuration
type Config struct {
	Client  ClientConfig  `yaml:"client"`
	Logging LoggingConfig `yaml:"logging"`
}

// ClientConfig holds request-client settings
type ClientConfig struct {
	Model        string `yaml:"model"`
	APIVersion   string `yaml:"api_version"`
	Region       string `yaml:"region"`
	RetryProfile string `yaml:"retry_profile"` // conservative, moderate, aggressive
	Debug        bool   `yaml:"debug"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := os.Getenv("AILAND_CONFIG")
	if configPath == "" {
		configPath = "configs/ailand.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// File doesn't exist - continue with defaults
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns configuration with sensible defaults
func defaultConfig() *Config {
	return &Config{
		Client: ClientConfig{
			Model:        "gpt-4.1-mini",
			APIVersion:   "2024-08-01-preview",
			Region:       "sweden",
			RetryProfile: "conservative",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides applies environment variable overrides
func (c *Config) applyEnvOverrides() {
	if model := os.Getenv("AILAND_MODEL"); model != "" {
		c.Client.Model = model
	}
	if version := os.Getenv("AILAND_API_VERSION"); version != "" {
		c.Client.APIVersion = version
	}
	if region := os.Getenv("AILAND_REGION"); region != "" {
		c.Client.Region = region
	}
	if profile := os.Getenv("AILAND_RETRY_PROFILE"); profile != "" {
		c.Client.RetryProfile = profile
	}
	if debug := os.Getenv("AILAND_DEBUG"); debug == "true" || debug == "1" {
		c.Client.Debug = true
	}

	if level := os.Getenv("AILAND_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("AILAND_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// validate checks configuration validity
func (c *Config) validate() error {
	switch c.Client.RetryProfile {
	case "conservative", "moderate", "aggressive", "":
	default:
		return fmt.Errorf("invalid retry_profile: %q", c.Client.RetryProfile)
	}

	switch c.Logging.Format {
	case "json", "text", "":
	default:
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}

	return nil
}
