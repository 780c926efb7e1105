// Package config manages the webopen user configuration file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"webopen.dev/webopen"
)

// Config is the top-level configuration.
type Config struct {
	Open   OpenConfig   `toml:"open"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OpenConfig configures how URLs are opened.
type OpenConfig struct {
	// Browser is used when no browser is requested explicitly.
	// Empty means the platform default.
	Browser string `toml:"browser"`
}

// OutputConfig configures terminal output behavior.
type OutputConfig struct {
	// Color is one of auto, always, never.
	Color string `toml:"color"`
	Quiet bool   `toml:"quiet"`
}

// LogConfig configures the optional debug log file.
type LogConfig struct {
	// File enables rotating file logging when set.
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"` // megabytes
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"` // days
}

// ColorModes are the accepted values for output.color.
var ColorModes = []string{"auto", "always", "never"}

// DefaultPath returns the standard location of the config file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "webopen", "config.toml")
}

// Load reads the config file at path, applying defaults and environment
// overrides. A missing file is not an error: all defaults apply.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	// Environment overrides
	if browser := os.Getenv("WEBOPEN_BROWSER"); browser != "" {
		cfg.Open.Browser = browser
		if err := cfg.validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// LoadFile reads the config file at path without environment overrides.
// Editing commands load through this so that saving never bakes a
// WEBOPEN_BROWSER override into the file.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{
		Output: OutputConfig{
			Color: "auto",
		},
		Log: LogConfig{
			MaxSize:    1,
			MaxBackups: 2,
			MaxAge:     30,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// PreferredBrowser returns the configured browser, or Default when none is
// configured.
func (c *Config) PreferredBrowser() webopen.Browser {
	if c.Open.Browser == "" {
		return webopen.Default
	}
	// validate() already proved this parses.
	b, _ := webopen.ParseBrowser(c.Open.Browser)
	return b
}

func (c *Config) validate() error {
	if c.Open.Browser != "" {
		if _, err := webopen.ParseBrowser(c.Open.Browser); err != nil {
			return fmt.Errorf("open.browser: %w", err)
		}
	}

	validColor := false
	for _, mode := range ColorModes {
		if c.Output.Color == mode {
			validColor = true
			break
		}
	}
	if !validColor {
		return fmt.Errorf("output.color must be one of auto, always, never (got %q)", c.Output.Color)
	}

	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		return fmt.Errorf("log sizes must not be negative")
	}
	return nil
}
