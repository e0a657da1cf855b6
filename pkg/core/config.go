// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultChannel is the NixOS channel searched when none is given
	DefaultChannel = "24.11"

	// DefaultNumResults is the page size when none is given
	DefaultNumResults = 10

	// DefaultTimeout is the request timeout in seconds
	DefaultTimeout = 30
)

// Config holds nixq configuration
type Config struct {
	Channel    string `yaml:"channel"`
	NumResults int    `yaml:"num_results"`
	Timeout    int    `yaml:"timeout"` // seconds
	BackendURL string `yaml:"backend_url"`
	Debug      bool   `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Channel:    DefaultChannel,
		NumResults: DefaultNumResults,
		Timeout:    DefaultTimeout,
		BackendURL: "", // use the built-in endpoint
		Debug:      false,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "nixq", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Channel == "" {
		cfg.Channel = DefaultChannel
	}
	if cfg.NumResults == 0 {
		cfg.NumResults = DefaultNumResults
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return cfg, nil
}

// RequestTimeout returns the configured timeout as a duration
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
