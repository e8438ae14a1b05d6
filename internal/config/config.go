package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names for the snapshot slot
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultStorageKey is the slot key the snapshot is written under
const DefaultStorageKey = "flowforge_state_v2"

// Config represents the application configuration
type Config struct {
	DataDir        string        `yaml:"data_dir"`
	Backend        string        `yaml:"backend"`
	Database       string        `yaml:"database"`
	StorageKey     string        `yaml:"storage_key"`
	LogLevel       string        `yaml:"log_level"`
	DefaultColumns []string      `yaml:"default_columns"`
	Notifications  Notifications `yaml:"notifications"`
	Theme          Theme         `yaml:"theme"`
}

// Notifications configures due date reminders
type Notifications struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	DueSoon string `yaml:"due_soon"` // Go duration, e.g. "24h"
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile merges the theme from FLOWFORGE_THEME_FILE over the config's theme
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("FLOWFORGE_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme Theme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv lets the environment override file settings
func applyEnv(config *Config) {
	if dir := os.Getenv("FLOWFORGE_DATA_DIR"); dir != "" {
		config.DataDir = dir
	}
	if level := os.Getenv("FLOWFORGE_LOG_LEVEL"); level != "" {
		config.LogLevel = level
	}
	if backend := os.Getenv("FLOWFORGE_BACKEND"); backend != "" {
		config.Backend = backend
	}
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := &Config{}
		applyEnv(config)
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path. A missing file yields defaults.
func LoadFrom(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}

	applyEnv(&config)
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to configPath, creating parent directories
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	if explicit := os.Getenv("FLOWFORGE_CONFIG"); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME next
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "flowforge", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "flowforge", "config.yaml"), nil
}

// defaultDataDir is ~/.flowforge, or the working directory when home is unknown
func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".flowforge"
	}
	return filepath.Join(homeDir, ".flowforge")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	if c.Backend == "" {
		c.Backend = BackendSQLite
	}
	if c.Database == "" {
		c.Database = "flowforge.db"
	}
	if c.StorageKey == "" {
		c.StorageKey = DefaultStorageKey
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Notifications.Enabled == nil {
		enabled := true
		c.Notifications.Enabled = &enabled
	}
	if c.Notifications.DueSoon == "" {
		c.Notifications.DueSoon = "24h"
	}
	c.Theme.ApplyDefaults()
}

// Validate reports settings that cannot be used
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%w: backend %q (want %s or %s)", ErrInvalidConfig, c.Backend, BackendSQLite, BackendMemory)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if d, err := time.ParseDuration(c.Notifications.DueSoon); err != nil || d <= 0 {
		return fmt.Errorf("%w: notifications.due_soon %q", ErrInvalidConfig, c.Notifications.DueSoon)
	}
	return nil
}

// DatabasePath resolves Database against DataDir unless it is absolute
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.Database) || c.Database == ":memory:" {
		return c.Database
	}
	return filepath.Join(c.DataDir, c.Database)
}

// LogDir is where the log file is written
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// Level returns LogLevel as a slog level
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// NotificationsEnabled reports whether due date reminders are shown
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// DueSoonWindow returns how far ahead a due date counts as due soon
func (c *Config) DueSoonWindow() time.Duration {
	d, err := time.ParseDuration(c.Notifications.DueSoon)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
	}
	return level, nil
}
