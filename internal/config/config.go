// Package config loads the application configuration from
// ~/.config/funkhunt/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/damalga/funkhunt/internal/catalogue"
	"github.com/damalga/funkhunt/internal/errors"
)

// Config represents the application configuration structure.
type Config struct {
	Library struct {
		Paths   []string `yaml:"paths"`   // Folders scanned at startup
		Formats []string `yaml:"formats"` // Glob patterns for catalogue-eligible files
	} `yaml:"library"`
	Viewer struct {
		Command string `yaml:"command"` // Override for the platform default viewer
	} `yaml:"viewer"`
	Watch struct {
		Enabled bool `yaml:"enabled"` // Rescan locations when files change
	} `yaml:"watch"`
}

// New returns the default configuration
func New() *Config {
	cfg := &Config{}
	cfg.Library.Formats = append([]string{}, catalogue.DefaultFormats...)
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/funkhunt/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(filepath.Join(home, ".config", "funkhunt", "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config so unset fields keep defaults
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if len(tempCfg.Library.Paths) > 0 {
		cfg.Library.Paths = tempCfg.Library.Paths
	}
	if len(tempCfg.Library.Formats) > 0 {
		cfg.Library.Formats = tempCfg.Library.Formats
	}
	if tempCfg.Viewer.Command != "" {
		cfg.Viewer.Command = tempCfg.Viewer.Command
	}
	cfg.Watch.Enabled = tempCfg.Watch.Enabled

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable: every format
// pattern must compile and library paths must not be blank.
func (c *Config) Validate() error {
	if _, err := catalogue.NewScanner(c.Library.Formats); err != nil {
		return err
	}
	for _, p := range c.Library.Paths {
		if p == "" {
			return errors.NewConfigError("library path must not be empty", "library.paths", errors.InvalidConfig, nil)
		}
	}
	return nil
}
