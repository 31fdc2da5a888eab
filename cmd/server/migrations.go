package main

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// runMigrations applies any pending schema migrations at startup, matching
// the deployment model where the API owns its own table. goose records the
// applied versions, so a restart against a current schema is a no-op.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(embeddedMigrations)
	goose.SetLogger(&gooseSlogAdapter{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied")
	return nil
}

// gooseSlogAdapter routes goose's log output through the structured logger.
type gooseSlogAdapter struct {
	logger *slog.Logger
}

func (g *gooseSlogAdapter) Fatalf(format string, v ...interface{}) {
	g.logger.Error(fmt.Sprintf(format, v...), "source", "goose")
}

func (g *gooseSlogAdapter) Printf(format string, v ...interface{}) {
	g.logger.Info(fmt.Sprintf(format, v...), "source", "goose")
}
