package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr            string
	DatabasePath    string
	MigrationsPath  string
	AdminUsername   string
	AdminPassword   string
	SessionLifetime time.Duration
	LogLevel        logrus.Level
}

// Load reads the configuration from the environment, after pulling in a .env file if there is one.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Addr:           getEnv("ADDR", ":8080"),
		DatabasePath:   getEnv("DATABASE_PATH", "league.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		AdminUsername:  os.Getenv("ADMIN_USERNAME"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}

	lifetime, err := time.ParseDuration(getEnv("SESSION_LIFETIME", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_LIFETIME: %w", err)
	}
	if lifetime <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_LIFETIME: must be positive, got %s", lifetime)
	}
	cfg.SessionLifetime = lifetime

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

// AdminEnabled reports whether admin credentials were configured.
func (c Config) AdminEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
