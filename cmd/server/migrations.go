package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/phrazzld/todolist-api/internal/platform/postgres/migrations"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/pressly/goose/v3"
)

// MigrationTableName is the goose version table; internal/testdb uses the same name.
const MigrationTableName = "schema_migrations"

// migrationsDir is where -migrate=create writes new files.
const migrationsDir = "internal/platform/postgres/migrations"

var migrationCommands = []string{"up", "down", "reset", "status", "version", "create"}

// slogGooseLogger adapts the goose logger interface to use slog
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages to slog.Error.
// It does not exit; the failing goose call returns its error to the caller.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// validateMigrationCommand checks the command and its arguments before any
// database connection is opened.
func validateMigrationCommand(command, name string) error {
	if !slices.Contains(migrationCommands, command) {
		return fmt.Errorf(
			"unknown migration command: %s (expected up, down, reset, status, version, or create)",
			command,
		)
	}
	if command == "create" && name == "" {
		return fmt.Errorf("migration name is required for 'create' command")
	}
	return nil
}

// runMigrations executes a goose command against the configured database
// using the migrations embedded in the binary.
func runMigrations(cfg *config.Config, logger *slog.Logger, command string, verbose bool, name string) error {
	if err := validateMigrationCommand(command, name); err != nil {
		return err
	}

	log := logger.With("component", "migrations", "command", command)
	goose.SetLogger(&slogGooseLogger{logger: log})
	goose.SetTableName(MigrationTableName)
	if verbose {
		goose.SetVerbose(true)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	// create writes a file on disk and needs neither the database nor the
	// embedded filesystem.
	if command == "create" {
		log.Info("Creating new migration", "name", name, "directory", migrationsDir)
		if err := goose.Create(nil, migrationsDir, name, "sql"); err != nil {
			return fmt.Errorf("migration command 'create' failed: %w", err)
		}
		return nil
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database connection", redact.Attr(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	start := time.Now()
	log.Info("Starting migration command execution")

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "reset":
		err = goose.Reset(db, ".")
	case "status":
		err = goose.Status(db, ".")
	case "version":
		err = goose.Version(db, ".")
	}
	if err != nil {
		log.Error("Migration command failed",
			redact.Attr(err),
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	log.Info("Migration command executed successfully",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
