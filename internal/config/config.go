// Package config provides application configuration for the CLI and the
// server. Configuration is a single JSON file; a missing file yields the
// defaults so a fresh install needs no setup.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"datacenter-tco/adapters/store"
	"datacenter-tco/core/engine"
	"datacenter-tco/core/output"
	"datacenter-tco/internal/errors"
	"datacenter-tco/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine calibrates the computation pipeline
	Engine engine.Config `json:"engine"`

	// Store configures scenario persistence
	Store StoreConfig `json:"store"`

	// Output configures result rendering
	Output OutputConfig `json:"output"`

	// Server configures the HTTP API
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// StoreConfig contains scenario store settings
type StoreConfig struct {
	// Backend is the store backend (memory, sqlite)
	Backend store.Backend `json:"backend"`

	// Path is the database file for the sqlite backend
	Path string `json:"path"`
}

// OutputConfig contains rendering settings
type OutputConfig struct {
	// DefaultFormat is the output format used when none is requested
	DefaultFormat output.Format `json:"default_format"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Address is the listen address
	Address string `json:"address"`

	// ReadTimeoutSeconds bounds request reading
	ReadTimeoutSeconds int `json:"read_timeout_seconds"`

	// ShutdownTimeoutSeconds bounds graceful shutdown
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".datacenter-tco", "scenarios.db")

	return &Config{
		Version: "1.0",
		Engine:  engine.DefaultConfig(),
		Store: StoreConfig{
			Backend: store.BackendSQLite,
			Path:    dbPath,
		},
		Output: OutputConfig{
			DefaultFormat: output.FormatTable,
		},
		Server: ServerConfig{
			Address:                ":8080",
			ReadTimeoutSeconds:     15,
			ShutdownTimeoutSeconds: 10,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the standard config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".datacenter-tco", "config.json")
}

// Load loads configuration from a file. A missing file is not an error:
// the defaults are returned so the CLI works out of the box.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config file", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("failed to parse config file", err)
	}

	return config, nil
}

// Save saves configuration to a file, creating the directory if needed
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Config("failed to create config directory", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Config("failed to encode config", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Config("failed to write config file", err)
	}
	return nil
}
