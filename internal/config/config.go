// Package config loads server settings from environment variables.
package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the studyroom server.
type Config struct {
	Port          string
	DBDriver      string // sqlite3 or postgres
	DBDSN         string
	MigrationsDir string
	JWTSecret     string
	JWTIssuer     string
}

// Load reads configuration from the environment. JWT_SECRET is required;
// everything else has a default suitable for local development.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite3"),
		DBDSN:         getEnv("DB_DSN", "studyroom.db?_foreign_keys=on"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "sql/schema"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     getEnv("JWT_ISS", "studyroom"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	switch cfg.DBDriver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
