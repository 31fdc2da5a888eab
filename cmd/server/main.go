// Package main implements the entry point for the task API server, a REST
// backend for a mobile task-management client with file attachments backed
// by object storage.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/cloudnexus/task-api/internal/config"
	"github.com/cloudnexus/task-api/internal/platform/logger"
)

// version is reported by the health endpoint.
const version = "1.0.0"

func main() {
	// Load a local .env when present; in deployed environments all
	// configuration comes from real environment variables.
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, wires the application together, and serves until
// a shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"bucket", cfg.Storage.Bucket,
		"region", cfg.Storage.Region)

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
