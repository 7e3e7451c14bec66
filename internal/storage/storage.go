// Package storage persists user preferences for the typing test in SQLite.
// Only preferences are stored; test results are never written.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// Setting keys
const (
	KeyTimeLimit = "time_limit"
	KeyTheme     = "theme"
)

const DefaultTheme = "default"

type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the settings database at path.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// GetSetting returns the stored value, or "" if the key was never set.
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	if key == "" {
		return fmt.Errorf("setting key is required")
	}
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

// GetTimeLimit returns the last time limit used, in seconds, or 0 if none.
func (s *Store) GetTimeLimit() int {
	value, err := s.GetSetting(KeyTimeLimit)
	if err != nil || value == "" {
		return 0
	}
	n, err := parseInt(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (s *Store) SetTimeLimit(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("time limit must be positive, got %d", seconds)
	}
	return s.SetSetting(KeyTimeLimit, intToString(seconds))
}

// GetTheme returns the saved theme name, defaulting to DefaultTheme.
func (s *Store) GetTheme() string {
	value, err := s.GetSetting(KeyTheme)
	if err != nil || value == "" {
		return DefaultTheme
	}
	return value
}

func (s *Store) SetTheme(name string) error {
	return s.SetSetting(KeyTheme, name)
}

// Helper functions

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func intToString(i int) string {
	return strconv.Itoa(i)
}
