// Package logger builds the application's zerolog logger.
//
// In development it writes human-friendly console lines; everywhere else it
// writes one JSON object per event so log shippers can parse it.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trentd187/players-api/internal/config"
)

// New returns the root logger for the process.
func New(cfg *config.Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	if cfg.IsDevelopment() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(out, cfg.LogLevel)
}

// NewWithWriter builds a logger writing to w at the named level.
// Unknown level names fall back to info.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "players-api").Logger()
}
