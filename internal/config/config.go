// Package config handles loading and validating runtime configuration for the Players API.
// Configuration values (like the database connection string and API port) are read from
// environment variables rather than being hardcoded, so the same binary can run locally,
// in CI, and in production with nothing but a different environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// Handy in development; in production the platform sets the real variables.
	"github.com/joho/godotenv"
	// koanf reads config sources (here: the environment) into a flat key space and
	// unmarshals it into our struct using the `koanf:"..."` tags.
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Defaults for optional settings.
const (
	DefaultPort     = "8080"
	DefaultDBName   = "players_api"
	DefaultEnv      = "development"
	DefaultLogLevel = "info"
)

// envKeys maps the environment variables we care about to koanf keys.
// Anything not listed here is ignored, so unrelated variables (PATH, HOME, ...) never
// end up in the config tree.
var envKeys = map[string]string{
	"PORT":         "port",
	"MONGODB_URI":  "mongodb_uri",
	"DATABASE_URL": "database_url",
	"DB_NAME":      "db_name",
	"ENV":          "env",
	"LOG_LEVEL":    "log_level",
}

// Config holds all runtime configuration values for the application.
type Config struct {
	Port        string `koanf:"port" validate:"required,numeric"`                              // TCP port the HTTP server listens on (e.g. "8080")
	MongoURI    string `koanf:"mongodb_uri"`                                                   // Document store connection string (mongodb:// or mongodb+srv://)
	DatabaseURL string `koanf:"database_url"`                                                  // Fallback connection string (postgres://, memory://, ...)
	DBName      string `koanf:"db_name" validate:"required"`                                   // Database selected on the MongoDB server
	Env         string `koanf:"env" validate:"required"`                                       // "development", "staging", or "production"
	LogLevel    string `koanf:"log_level" validate:"required,oneof=trace debug info warn error"` // zerolog level name
}

// Load reads configuration from environment variables and returns a populated Config.
// A missing connection string is NOT an error here: the database package reports it
// when it tries to connect, which keeps "what is configured" separate from "can we connect".
func Load() (*Config, error) {
	// Attempt to load a .env file from the current working directory.
	// The error is intentionally ignored: a missing .env is normal outside development.
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills optional settings that were absent or empty.
func applyDefaults(cfg *Config) {
	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.DBName == "" {
		cfg.DBName = DefaultDBName
	}
	if cfg.Env == "" {
		cfg.Env = DefaultEnv
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// ConnectionString returns the store connection string.
// MONGODB_URI wins when both are set; DATABASE_URL is the fallback.
func (c *Config) ConnectionString() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return c.DatabaseURL
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == DefaultEnv
}
