// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	TimeLimit int    `yaml:"time_limit"` // seconds to prefill in the entry; 0 leaves it blank
	Theme     string `yaml:"theme"`
	DBPath    string `yaml:"db_path"`
	LogPath   string `yaml:"log_path"`
}

// Default returns the configuration used when nothing overrides it.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	dataDir := filepath.Join(home, ".local", "share", "moditime")
	return Config{
		Theme:   "default",
		DBPath:  filepath.Join(dataDir, "moditime.db"),
		LogPath: filepath.Join(dataDir, "logs", "moditime.log"),
	}, nil
}

// Load builds configuration from defaults, MODITIME_* environment
// variables and, when path is non-empty, a YAML file. Keys present in the
// file take precedence over the environment.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	cfg.TimeLimit = getEnvInt("MODITIME_TIME_LIMIT", cfg.TimeLimit)
	cfg.Theme = getEnv("MODITIME_THEME", cfg.Theme)
	cfg.DBPath = getEnv("MODITIME_DB", cfg.DBPath)
	cfg.LogPath = getEnv("MODITIME_LOG", cfg.LogPath)

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	if c.TimeLimit < 0 {
		return fmt.Errorf("time_limit cannot be negative")
	}
	if c.Theme == "" {
		return fmt.Errorf("theme cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path cannot be empty")
	}
	if c.LogPath == "" {
		return fmt.Errorf("log_path cannot be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
