package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moditime.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if cfg.TimeLimit != 0 {
		t.Errorf("Expected blank time limit, got %d", cfg.TimeLimit)
	}
	if cfg.Theme != "default" {
		t.Errorf("Expected default theme, got %q", cfg.Theme)
	}
	if !strings.HasSuffix(cfg.DBPath, filepath.Join("moditime", "moditime.db")) {
		t.Errorf("Unexpected DB path %q", cfg.DBPath)
	}
	if !strings.HasSuffix(cfg.LogPath, "moditime.log") {
		t.Errorf("Unexpected log path %q", cfg.LogPath)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MODITIME_TIME_LIMIT", "90")
	t.Setenv("MODITIME_THEME", "gruvbox")
	t.Setenv("MODITIME_DB", "/tmp/custom.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TimeLimit != 90 {
		t.Errorf("Expected time limit 90, got %d", cfg.TimeLimit)
	}
	if cfg.Theme != "gruvbox" {
		t.Errorf("Expected theme gruvbox, got %q", cfg.Theme)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("Expected custom DB path, got %q", cfg.DBPath)
	}
}

func TestLoadIgnoresMalformedEnvInt(t *testing.T) {
	t.Setenv("MODITIME_TIME_LIMIT", "soon")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TimeLimit != 0 {
		t.Errorf("Expected fallback time limit 0, got %d", cfg.TimeLimit)
	}
}

func TestLoadFileOverridesEnv(t *testing.T) {
	t.Setenv("MODITIME_THEME", "gruvbox")
	path := writeFile(t, "time_limit: 45\ntheme: catppuccin\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TimeLimit != 45 {
		t.Errorf("Expected time limit 45, got %d", cfg.TimeLimit)
	}
	if cfg.Theme != "catppuccin" {
		t.Errorf("Expected theme from file, got %q", cfg.Theme)
	}
	if cfg.DBPath == "" {
		t.Error("Keys absent from the file should keep their defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "time_limit: [not, an, int]\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestLoadRejectsNegativeTimeLimit(t *testing.T) {
	path := writeFile(t, "time_limit: -10\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for negative time limit")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{TimeLimit: 60, Theme: "default", DBPath: "a.db", LogPath: "a.log"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative time limit", func(c *Config) { c.TimeLimit = -1 }},
		{"empty theme", func(c *Config) { c.Theme = "" }},
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"empty log path", func(c *Config) { c.LogPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
