package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/cloudnexus/task-api/internal/config"
	"github.com/cloudnexus/task-api/internal/platform/awss3"
	"github.com/cloudnexus/task-api/internal/platform/postgres"
	"github.com/cloudnexus/task-api/internal/service"
	"github.com/cloudnexus/task-api/internal/storage"
	"github.com/cloudnexus/task-api/internal/store"
)

// application holds the shared dependencies built once at startup and
// injected into every request handler. Nothing here is reconstructed per
// request; the store handle lives for the process lifetime and is disposed
// in cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore     store.TaskStore
	objectStore   storage.ObjectStore
	taskService   service.TaskService
	backupService service.BackupService
}

// newApplication establishes the database connection, applies pending
// migrations, builds the object storage client, and wires the service layer.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		closeQuietly(db, logger)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	objectStore, err := awss3.New(ctx, cfg.Storage, logger)
	if err != nil {
		closeQuietly(db, logger)
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	taskStore := postgres.NewTaskStore(db, logger)

	return &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		taskStore:     taskStore,
		objectStore:   objectStore,
		taskService:   service.NewTaskService(taskStore, logger),
		backupService: service.NewBackupService(taskStore, objectStore, logger),
	}, nil
}

// openDatabase establishes a connection to the database and configures the
// connection pool. Returns an error if the database cannot be reached.
func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool with reasonable defaults
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test the connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		closeQuietly(db, logger)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established")
	return db, nil
}

// cleanup releases process-lifetime resources during shutdown.
func (app *application) cleanup() {
	closeQuietly(app.db, app.logger)
}

func closeQuietly(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}
