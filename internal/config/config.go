// Package config loads and writes the TOML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"widgetkit/internal/apperr"
)

const fileName = "config.toml"

// Config holds the look and defaults shared by every demo.
type Config struct {
	TextSize float32  `toml:"text_size"`
	Padding  float32  `toml:"padding"`
	LogLevel string   `toml:"log_level"`
	Labels   []string `toml:"labels"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TextSize: 22,
		Padding:  10,
		LogLevel: "info",
		Labels:   []string{"flamingo", "tiger", "lion"},
	}
}

// Load reads the TOML file at path over the defaults. An empty path falls
// back to DefaultPath, and a missing default file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg as TOML to path, creating parent directories.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.TextSize <= 0 {
		return apperr.Invalid("text_size", "must be positive, got %v", c.TextSize)
	}
	if c.Padding < 0 {
		return apperr.Invalid("padding", "must not be negative, got %v", c.Padding)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return apperr.Invalid("log_level", "unknown level %q", c.LogLevel)
	}
	return nil
}

// DefaultPath is $XDG_CONFIG_HOME/widgetkit/config.toml, falling back to
// ~/.config when the variable is unset.
func DefaultPath() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "widgetkit", fileName)
}

func xdgOrFallback(xdg string, fallback string) string {
	if dir := os.Getenv(xdg); dir != "" {
		return dir
	}
	return fallback
}
