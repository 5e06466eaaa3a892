// cmd/server/main.go
// This is the entry point for the Players API server.
// The cmd/ folder holds executable binaries; internal/ holds the packages that do the
// actual work and are not meant to be imported by other projects.
//
//	@title			Players API
//	@version		1.0
//	@description	CRUD service for sports player records.
//	@BasePath		/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/trentd187/players-api/internal/config"
	"github.com/trentd187/players-api/internal/database"
	"github.com/trentd187/players-api/internal/logger"
	"github.com/trentd187/players-api/internal/router"
)

const (
	connectTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration from environment variables (and optionally a .env file).
	cfg, err := config.Load()
	if err != nil {
		// No logger yet, so fall back to a bare one that still writes JSON.
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.New(cfg)

	// Connect before anything listens: the server must never accept requests it
	// cannot serve. On failure we log and exit non-zero.
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	store, err := database.Connect(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("scheme", database.Scheme(cfg.ConnectionString())).Msg("Failed to connect to database")
	}

	app := router.New(store, log)

	// Listen in a goroutine so main can wait for a shutdown signal.
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting server")
		serverErr <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("Server stopped")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	// Stop taking requests first, then release the database connection.
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to close database connection")
	}

	log.Info().Msg("Server stopped")
}
