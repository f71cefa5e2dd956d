// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds vctools configuration
type Config struct {
	VersionName string `yaml:"version_name"`
	Platform    string `yaml:"platform"`
	Debug       bool   `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		VersionName: "", // Newest installed release
		Platform:    getDefaultPlatform(),
		Debug:       false,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "vctools", "config.yaml")
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
	if cfg.Platform == "" {
		cfg.Platform = getDefaultPlatform()
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "vctools", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultPlatform() string {
	if platform := os.Getenv("VCTOOLS_PLATFORM"); platform != "" {
		return platform
	}
	return "x86"
}
