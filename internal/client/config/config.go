// Package config loads the client configuration from a TOML file with
// sensible defaults for every setting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultServerURL is the default remote system endpoint.
const DefaultServerURL = "http://localhost:8080"

// Config holds client configuration for fieldsync.
type Config struct {
	ServerURL     string
	DBPath        string
	ProbeInterval time.Duration
	ProbeTimeout  time.Duration
	DrainInterval time.Duration
	LogLevel      string
}

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	ServerURL     string `toml:"server_url"`
	DBPath        string `toml:"db_path"`
	ProbeInterval string `toml:"probe_interval"`
	ProbeTimeout  string `toml:"probe_timeout"`
	DrainInterval string `toml:"drain_interval"`
	LogLevel      string `toml:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ServerURL:     DefaultServerURL,
		DBPath:        "fieldsync-client.db",
		ProbeInterval: 2 * time.Second,
		ProbeTimeout:  5 * time.Second,
		DrainInterval: 30 * time.Second,
		LogLevel:      "info",
	}
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.fieldsync/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".fieldsync", "config.toml")
	}
	return ""
}

// Load reads the TOML config at path and applies it over the defaults.
// A missing file is not an error: defaults are returned as is.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultConfigPath()
	}
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := toml.Unmarshal(b, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := applyFileConfig(&cfg, fc); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the configuration for obvious misuse.
func (c Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url must not be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.ProbeInterval <= 0 {
		return fmt.Errorf("probe_interval must be positive")
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe_timeout must be positive")
	}
	if c.DrainInterval <= 0 {
		return fmt.Errorf("drain_interval must be positive")
	}
	return nil
}

func applyFileConfig(cfg *Config, fc FileConfig) error {
	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}

	if err := setDuration("probe_interval", fc.ProbeInterval, &cfg.ProbeInterval); err != nil {
		return err
	}
	if err := setDuration("probe_timeout", fc.ProbeTimeout, &cfg.ProbeTimeout); err != nil {
		return err
	}
	if err := setDuration("drain_interval", fc.DrainInterval, &cfg.DrainInterval); err != nil {
		return err
	}

	return nil
}

func setDuration(name, value string, dst *time.Duration) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = d
	return nil
}
