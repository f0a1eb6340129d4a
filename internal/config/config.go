// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads the application configuration from a YAML file,
// creating a default file on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that reads and writes YAML in the
// human form ("1s", "168h") instead of raw nanoseconds.
type Duration time.Duration

// Std returns the standard library duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the application configuration.
type Config struct {
	// DataDir is where durable state (the session database) lives.
	// Supports ~ expansion. Default: ~/.waitingwall
	DataDir string `yaml:"data_dir"`

	Session  SessionConfig  `yaml:"session"`
	Auth     AuthConfig     `yaml:"auth"`
	Trending TrendingConfig `yaml:"trending"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SessionConfig controls the durable session record.
type SessionConfig struct {
	// TTL is the session lifetime. Default: 168h (7 days).
	TTL Duration `yaml:"ttl"`
}

// AuthConfig controls the simulated auth boundary.
type AuthConfig struct {
	// Latency is the artificial delay before login/signup resolve.
	Latency Duration `yaml:"latency"`

	// DemoEmail and DemoPassword are the single accepted credential pair.
	DemoEmail    string `yaml:"demo_email"`
	DemoPassword string `yaml:"demo_password"`
}

// TrendingConfig points at the editorial trending file.
type TrendingConfig struct {
	// File is an optional YAML file of trending topics/users. Empty means
	// use the built-in seed data.
	File string `yaml:"file"`

	// Watch reloads the file on change when true.
	Watch bool `yaml:"watch"`
}

// LoggingConfig mirrors the logging package's knobs.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`   // file logging directory, empty disables
	JSON  bool   `yaml:"json"`  // force JSON on stderr
	Quiet bool   `yaml:"quiet"` // disable stderr output
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		DataDir: "~/.waitingwall",
		Session: SessionConfig{TTL: Duration(7 * 24 * time.Hour)},
		Auth: AuthConfig{
			Latency:      Duration(time.Second),
			DemoEmail:    "demo@waitingwall.com",
			DemoPassword: "demo123",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultPath returns the default config file location,
// ~/.waitingwall/waitingwall.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".waitingwall", "waitingwall.yaml"), nil
}

// Load reads the config at path, creating the default file first if it
// doesn't exist.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefault(path); err != nil {
			return Config{}, err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, nil
}

// SessionDir returns the session database directory under DataDir.
func (c Config) SessionDir() string {
	return filepath.Join(ExpandPath(c.DataDir), "session")
}

func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
