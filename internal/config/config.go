// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const dbFileName = "sql_runner.db"

// Config holds everything the service reads from its environment.
type Config struct {
	ListenAddr         string   // HTTP listen address (default ":5000")
	DBPath             string   // SQLite database file, resolved by ResolveDBPath
	DatabaseURL        string   // postgres:// URL; when set it replaces the SQLite file
	BaseDir            string   // directory the default database locations hang off
	CORSAllowedOrigins []string // default ["*"]
	LogLevel           string   // debug, info, warn, error, off (default "info")
	Debug              bool
}

var executable = os.Executable

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		ListenAddr:  os.Getenv("LISTEN_ADDR"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		BaseDir:     os.Getenv("SQL_RUNNER_BASE_DIR"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		Debug:       parseBool(os.Getenv("DEBUG")),
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	if cfg.DatabaseURL != "" && !cfg.UsesPostgres() {
		return nil, fmt.Errorf("DATABASE_URL must start with postgres:// or postgresql://")
	}

	if cfg.BaseDir == "" {
		exe, err := executable()
		if err != nil {
			return nil, fmt.Errorf("locate executable: %w", err)
		}
		cfg.BaseDir = filepath.Dir(exe)
	}
	cfg.DBPath = ResolveDBPath(cfg.BaseDir)

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":5000"
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// ResolveDBPath picks the SQLite file: DB_PATH when set, else
// <base>/sql_runner.db when it exists (container layout), else
// <base>/../sql_runner.db (checkout layout).
func ResolveDBPath(baseDir string) string {
	if p := os.Getenv("DB_PATH"); p != "" {
		return p
	}
	inBase := filepath.Join(baseDir, dbFileName)
	if _, err := os.Stat(inBase); err == nil {
		return inBase
	}
	return filepath.Join(baseDir, "..", dbFileName)
}

// UsesPostgres reports whether DATABASE_URL selects PostgreSQL.
func (c *Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

// GommonLevel maps LogLevel onto echo's logger levels. DEBUG forces debug.
func (c *Config) GommonLevel() log.Lvl {
	if c.Debug {
		return log.DEBUG
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// LoadDotEnv reads KEY=VALUE pairs from path without overriding variables
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
