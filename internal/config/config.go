// Package config loads LifeOS configuration from a YAML file with
// environment-variable overrides. A missing config file is not an error;
// defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all lifeos configuration.
type Config struct {
	// Workspace is the root of the file-backed workspace.
	Workspace string `yaml:"workspace"`

	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lifeos.yaml"
	}
	return filepath.Join(home, ".lifeos", "config.yaml")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Workspace: "~/.openclaw/workspace",
		Server: ServerConfig{
			Addr: ":8440",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating the parent
// directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides. WORKSPACE_PATH is
// honored for compatibility with other workspace tooling; LIFEOS_WORKSPACE
// wins when both are set.
func (c *Config) applyEnvOverrides() {
	if ws := os.Getenv("WORKSPACE_PATH"); ws != "" {
		c.Workspace = ws
	}
	if ws := os.Getenv("LIFEOS_WORKSPACE"); ws != "" {
		c.Workspace = ws
	}
	if addr := os.Getenv("LIFEOS_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("LIFEOS_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// WorkspaceRoot returns the workspace path with a leading "~" expanded.
func (c *Config) WorkspaceRoot() string {
	if strings.HasPrefix(c.Workspace, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(c.Workspace, "~"))
		}
	}
	return c.Workspace
}
