package config

import (
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so the host environment can't leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for name := range envKeys {
		t.Setenv(name, "")
	}
}

func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("port incorrect, wanted: %s, got: %s", DefaultPort, cfg.Port)
	}
	if cfg.DBName != DefaultDBName {
		t.Errorf("db name incorrect, wanted: %s, got: %s", DefaultDBName, cfg.DBName)
	}
	if cfg.Env != DefaultEnv || !cfg.IsDevelopment() {
		t.Errorf("env incorrect, got: %s", cfg.Env)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("log level incorrect, wanted: %s, got: %s", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.ConnectionString() != "" {
		t.Errorf("expected no connection string, got: %s", cfg.ConnectionString())
	}
}

func TestLoad_fromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("DB_NAME", "league")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DATABASE_URL", "postgres://localhost/players")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("port incorrect, got: %s", cfg.Port)
	}
	if cfg.DBName != "league" {
		t.Errorf("db name incorrect, got: %s", cfg.DBName)
	}
	if cfg.IsDevelopment() {
		t.Errorf("expected production env")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level should be normalised, got: %s", cfg.LogLevel)
	}
	if cfg.ConnectionString() != "postgres://localhost/players" {
		t.Errorf("connection string incorrect, got: %s", cfg.ConnectionString())
	}
}

func TestConnectionString_prefersMongoURI(t *testing.T) {
	cfg := &Config{
		MongoURI:    "mongodb://localhost:27017",
		DatabaseURL: "postgres://localhost/players",
	}
	if got := cfg.ConnectionString(); got != cfg.MongoURI {
		t.Errorf("wanted mongo uri, got: %s", got)
	}
}

func TestLoad_invalid(t *testing.T) {
	tests := map[string]struct {
		name  string
		value string
		field string
	}{
		"non numeric port":  {name: "PORT", value: "http", field: "Port"},
		"unknown log level": {name: "LOG_LEVEL", value: "loud", field: "LogLevel"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.name, tc.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected an error for %s=%s", tc.name, tc.value)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error should mention %s, got: %v", tc.field, err)
			}
		})
	}
}
