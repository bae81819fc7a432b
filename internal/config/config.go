// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultTheme    = "default"
	DefaultLogLevel = "warn"
)

// Config represents the subwin configuration.
type Config struct {
	Theme ThemeConfig `toml:"theme"`
	Log   LogConfig   `toml:"log"`
	Demo  DemoConfig  `toml:"demo"`
}

// ThemeConfig holds theme selection and hot-reload settings.
type ThemeConfig struct {
	Name      string `toml:"name"`
	HotReload bool   `toml:"hot_reload"`
}

// LogConfig holds logging settings. The TUI owns the terminal, so logs
// go to a file, never to stderr.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Empty = logging disabled
}

// DemoConfig holds options for the demo application.
type DemoConfig struct {
	WindowLeft int `toml:"window_left"`
	WindowTop  int `toml:"window_top"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Name:      DefaultTheme,
			HotReload: true,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			File:  "",
		},
		Demo: DemoConfig{
			WindowLeft: 10,
			WindowTop:  4,
		},
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Demo.WindowLeft < 0 || c.Demo.WindowTop < 0 {
		return errors.New("demo window offsets must not be negative")
	}
	return nil
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "subwin", "config.toml")
}

// LoadConfig reads the config file at path, falling back to the default
// location when path is empty. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
