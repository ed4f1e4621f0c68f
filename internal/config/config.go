// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the Connectify client.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete client configuration.
type Config struct {
	// UI configuration
	UI UIConfig `toml:"ui"`

	// Responder configuration (simulated peers)
	Responder ResponderConfig `toml:"responder"`

	// Auth configuration (local identity provider)
	Auth AuthConfig `toml:"auth"`

	// Log configuration
	Log LogConfig `toml:"log"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// ShowMembers controls whether the members panel starts visible.
	ShowMembers bool `toml:"show_members"`
	// DefaultRoom is the room selected on startup.
	DefaultRoom string `toml:"default_room"`
}

// ResponderConfig tunes the simulated peer replies.
type ResponderConfig struct {
	// Chance is the probability in [0, 1] that a send draws a reply.
	Chance float64 `toml:"chance"`
	// MinDelayMs / MaxDelayMs bound the reply delay, half-open [min, max).
	MinDelayMs int `toml:"min_delay_ms"`
	MaxDelayMs int `toml:"max_delay_ms"`
}

// AuthConfig contains local identity provider settings.
type AuthConfig struct {
	// AccountsPath is the accounts file location (empty = default under
	// the app home directory).
	AccountsPath string `toml:"accounts_path"`
}

// LogConfig contains debug logging settings.
type LogConfig struct {
	// Debug enables the JSON debug log. A TUI owns the terminal, so logs
	// always go to a file, never stdout.
	Debug bool `toml:"debug"`
	// Path is the log file location (empty = default under the app home
	// directory).
	Path string `toml:"path"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			ShowMembers: true,
			DefaultRoom: "general",
		},
		Responder: ResponderConfig{
			Chance:     0.7,
			MinDelayMs: 1000,
			MaxDelayMs: 4000,
		},
	}
}

// Dir returns the application home directory (~/.connectify).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".connectify"), nil
}

// Path returns the default configuration file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the default location, falling back to
// defaults when no file exists, then applies environment overrides and
// clamps invalid values.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path. A missing file is
// not an error; a malformed file is.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.clamp()
	return cfg, nil
}

// applyEnvOverrides applies CONNECTIFY_* environment variables on top of
// whatever the file provided.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CONNECTIFY_DEFAULT_ROOM"); v != "" {
		c.UI.DefaultRoom = v
	}
	if v := os.Getenv("CONNECTIFY_REPLY_CHANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Responder.Chance = f
		}
	}
	if v := os.Getenv("CONNECTIFY_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = b
		}
	}
}

// clamp forces tunables into their valid ranges instead of failing startup.
func (c *Config) clamp() {
	if c.Responder.Chance < 0 {
		c.Responder.Chance = 0
	}
	if c.Responder.Chance > 1 {
		c.Responder.Chance = 1
	}
	if c.Responder.MinDelayMs <= 0 {
		c.Responder.MinDelayMs = 1000
	}
	if c.Responder.MaxDelayMs <= c.Responder.MinDelayMs {
		c.Responder.MaxDelayMs = c.Responder.MinDelayMs + 3000
	}
}
