// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the config file name inside the config directory.
const ConfigFileName = "config.toml"

// StoreFileName is the default task file name inside the data directory.
const StoreFileName = "tasks.json"

// Config represents the application configuration.
type Config struct {
	Store StoreConfig `toml:"store"`
	Log   LogConfig   `toml:"log"`
}

// StoreConfig holds backing store settings from the [store] section.
type StoreConfig struct {
	Path string `toml:"path"` // Path to the task file
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// Loader loads configuration from TOML files.
type Loader struct {
	confDir string // Directory holding config.toml
	dataDir string // Directory holding the task file and logs
}

// NewLoader creates a Loader over the default XDG directories.
func NewLoader() *Loader {
	return &Loader{
		confDir: defaultConfigDir(),
		dataDir: defaultDataDir(),
	}
}

// NewLoaderWithDirs creates a Loader with explicit directories.
// This is useful for testing.
func NewLoaderWithDirs(confDir, dataDir string) *Loader {
	return &Loader{
		confDir: confDir,
		dataDir: dataDir,
	}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskdeck")
}

// defaultDataDir returns the default data directory.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskdeck")
}

// Default returns the configuration used when no config file exists.
func (l *Loader) Default() *Config {
	return &Config{
		Store: StoreConfig{Path: filepath.Join(l.dataDir, StoreFileName)},
		Log:   LogConfig{Level: "info"},
	}
}

// Load returns the configuration, merging the config file over defaults.
// A missing config file is not an error.
func (l *Loader) Load() (*Config, error) {
	cfg := l.Default()
	if l.confDir == "" {
		return cfg, nil
	}

	path := filepath.Join(l.confDir, ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if file.Store.Path != "" {
		cfg.Store.Path = file.Store.Path
	}
	if file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}
	return cfg, nil
}

// LogDir returns the directory log files are written to.
func (l *Loader) LogDir() string {
	return l.dataDir
}
