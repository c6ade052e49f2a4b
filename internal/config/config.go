// Package config loads the tracker's configuration from the environment,
// with optional .env file support for local use.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the tracker needs at startup.
type Config struct {
	// DBPath is the SQLite database file holding the snapshots.
	DBPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// ExportDir is where export artifacts are written.
	ExportDir string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; a missing file is
// not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:    getEnv("DB_PATH", "./data/expenses.db"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		ExportDir: getEnv("EXPORT_DIR", "."),
	}
}

// Validate checks the configuration, creating the database directory if
// it does not exist yet.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	if c.DBPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if dir := filepath.Dir(c.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create database directory %q: %w", dir, err)
		}
	}

	if info, err := os.Stat(c.ExportDir); err == nil && !info.IsDir() {
		return fmt.Errorf("export dir %q is not a directory", c.ExportDir)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
