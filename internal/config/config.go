// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Remote  RemoteConfig  `toml:"remote"`
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// RemoteConfig points the client at the task collection.
type RemoteConfig struct {
	BaseURL string `toml:"base_url"` // e.g., "http://localhost:8080/api"
	Timeout string `toml:"timeout"`  // e.g., "10s"
}

// ServerConfig holds settings for `taskboard serve`.
type ServerConfig struct {
	Addr string `toml:"addr"` // e.g., ":8080"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme  string `toml:"theme"`  // "mocha", "macchiato", "frappe", "latte"
	Layout string `toml:"layout"` // "grid" or "list"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Remote: RemoteConfig{
			BaseURL: "http://localhost:8080/api",
			Timeout: "10s",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:  "frappe",
			Layout: "grid",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "taskboard.db"
	}
	return filepath.Join(home, ".local", "share", "taskboard", "taskboard.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "taskboard", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TASKBOARD_URL"); v != "" {
		cfg.Remote.BaseURL = v
	}
	if v := os.Getenv("TASKBOARD_TIMEOUT"); v != "" {
		cfg.Remote.Timeout = v
	}
	if v := os.Getenv("TASKBOARD_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("TASKBOARD_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TASKBOARD_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("TASKBOARD_UI_LAYOUT"); v != "" {
		cfg.UI.Layout = v
	}
	if v := os.Getenv("TASKBOARD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Remote.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.Remote.BaseURL)
	}
	d, err := time.ParseDuration(c.Remote.Timeout)
	if err != nil {
		return fmt.Errorf("timeout must be a duration like \"10s\", got %q", c.Remote.Timeout)
	}
	if d <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.Server.Addr == "" {
		return errors.New("addr must be set")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.UI.Layout != "grid" && c.UI.Layout != "list" {
		return fmt.Errorf("layout must be \"grid\" or \"list\", got %q", c.UI.Layout)
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	return nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Timeout returns the remote request timeout.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.Remote.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
