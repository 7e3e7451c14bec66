package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aayushbajaj/moditime/internal/config"
	"github.com/aayushbajaj/moditime/internal/storage"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"sentences", "version"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Expected subcommand %q, got %v (err %v)", name, cmd, err)
		}
	}

	for _, flag := range []string{"config", "time", "theme", "db", "log"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("Expected flag --%s", flag)
		}
	}
}

func TestSentencesCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"sentences"})

	if err := root.Execute(); err != nil {
		t.Fatalf("sentences failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 30 {
		t.Errorf("Expected 30 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "1. ") {
		t.Errorf("Expected numbered output, got %q", lines[0])
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != Version {
		t.Errorf("Expected %q, got %q", Version, out.String())
	}
}

func TestRootRejectsArgs(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"unexpected"})

	if err := root.Execute(); err == nil {
		t.Error("Expected error for positional arguments")
	}
}

func TestRootRejectsNegativeTimeFlag(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--time=-5", "--db", filepath.Join(t.TempDir(), "x.db")})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("Expected configuration error, got %v", err)
	}
}

func TestResolveOptionsUsesSavedPreferences(t *testing.T) {
	store, err := storage.New(filepath.Join(t.TempDir(), "moditime.db"))
	if err != nil {
		t.Fatalf("storage.New failed: %v", err)
	}
	defer store.Close()
	store.SetTimeLimit(90)
	store.SetTheme("catppuccin")

	opts := resolveOptions(config.Config{Theme: storage.DefaultTheme}, store)
	if opts.TimeLimit != 90 {
		t.Errorf("Expected saved time limit 90, got %d", opts.TimeLimit)
	}
	if opts.Theme != "catppuccin" {
		t.Errorf("Expected saved theme, got %q", opts.Theme)
	}

	opts = resolveOptions(config.Config{TimeLimit: 15, Theme: "gruvbox"}, store)
	if opts.TimeLimit != 15 || opts.Theme != "gruvbox" {
		t.Errorf("Explicit configuration should win, got %+v", opts)
	}
}

func TestRootRejectsUnknownTheme(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--theme=solarized", "--db", filepath.Join(t.TempDir(), "x.db")})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), `unknown theme "solarized"`) {
		t.Errorf("Expected unknown theme error, got %v", err)
	}
}
