// Package config loads the application configuration from YAML,
// falling back to defaults when no file exists.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// DatabasePath overrides the default ~/.hito/hito.db location
	DatabasePath string `yaml:"database_path"`
	Gantt        Gantt  `yaml:"gantt"`
	Theme        Theme  `yaml:"theme"`
}

// Gantt holds timeline display settings
type Gantt struct {
	// PaddingDays widens the derived date range on both sides
	PaddingDays int `yaml:"padding_days"`
}

// Theme holds the TUI accent colors
type Theme struct {
	Accent string `yaml:"accent"`
	Border string `yaml:"border"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Gantt: Gantt{PaddingDays: 1},
		Theme: Theme{
			Accent: "#874BFD",
			Border: "#5F5FD7",
		},
	}
}

// Load reads config from HITO_CONFIG_FILE or the user config
// directory. A missing file is not an error; defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("HITO_CONFIG_FILE")
	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Partial files keep defaults for what they omit
	defaults := Default()
	if cfg.Theme.Accent == "" {
		cfg.Theme.Accent = defaults.Theme.Accent
	}
	if cfg.Theme.Border == "" {
		cfg.Theme.Border = defaults.Theme.Border
	}
	if cfg.Gantt.PaddingDays < 0 {
		cfg.Gantt.PaddingDays = defaults.Gantt.PaddingDays
	}

	return cfg, nil
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "hito", "config.yaml"), nil
}
