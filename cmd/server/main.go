// Package main implements the entry point for the TodoList API server,
// which serves users' todo lists, tasks and categories over HTTP.
//
// @title TodoList API
// @version 1.0
// @description Multi-user todo list backend with JWT auth, tasks, categories, search and analytics.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/redact"
)

// options holds the parsed command line.
type options struct {
	migrate       string
	migrationName string
	verbose       bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)

	var opts options
	fs.StringVar(&opts.migrate, "migrate", "",
		"Run database migrations: up, down, reset, status, version or create")
	fs.StringVar(&opts.migrationName, "name", "", "Name for the new migration (used with -migrate=create)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose migration logging")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("server exited with error", redact.Attr(err))
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and then either executes a
// migration command or serves HTTP until SIGINT or SIGTERM.
func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rate_limit_enabled", cfg.RateLimit.Enabled,
		"shared_rate_limit", cfg.RateLimit.RedisURL != "")

	if opts.migrate != "" {
		return runMigrations(cfg, log, opts.migrate, opts.verbose, opts.migrationName)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
