package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/todolist-api/internal/api"
	apiMiddleware "github.com/phrazzld/todolist-api/internal/api/middleware"
	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/phrazzld/todolist-api/internal/platform/postgres"
	"github.com/phrazzld/todolist-api/internal/platform/redisstore"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/service/auth"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/redis/go-redis/v9"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	redis  *redis.Client

	jwtService       auth.JWTService
	authService      service.AuthService
	userService      service.UserService
	listService      service.ListService
	taskService      service.TaskService
	categoryService  service.CategoryService
	searchService    service.SearchService
	analyticsService service.AnalyticsService

	// limiter is nil when rate limiting is disabled.
	limiter apiMiddleware.Limiter

	dbCheck    api.HealthCheck
	cacheCheck api.HealthCheck
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		dbCheck: db.PingContext,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes)

	tx := store.NewTransactor(db)
	userStore := postgres.NewPostgresUserStore(db, logger)
	listStore := postgres.NewPostgresListStore(db, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)
	categoryStore := postgres.NewPostgresCategoryStore(db, logger)
	analyticsStore := postgres.NewPostgresAnalyticsStore(db, logger)

	app.authService = service.NewAuthService(
		tx,
		userStore,
		app.jwtService,
		auth.NewBcryptHasher(cfg.Auth.BCryptCost),
		auth.NewBcryptVerifier(),
		logger,
	)
	app.userService = service.NewUserService(tx, userStore, logger)
	app.listService = service.NewListService(tx, listStore, logger)
	app.taskService = service.NewTaskService(tx, taskStore, listStore, categoryStore, logger)
	app.categoryService = service.NewCategoryService(tx, categoryStore, logger)
	app.searchService = service.NewSearchService(taskStore, listStore, logger)
	app.analyticsService = service.NewAnalyticsService(analyticsStore, logger)

	app.setupRateLimiter(ctx)

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupRateLimiter picks the shared Redis limiter when a Redis URL is
// configured and reachable, and the in-process limiter otherwise.
func (app *application) setupRateLimiter(ctx context.Context) {
	cfg := app.config.RateLimit
	if !cfg.Enabled {
		app.logger.Info("Rate limiting disabled")
		return
	}

	if cfg.RedisURL != "" {
		client, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err == nil {
			app.redis = client
			app.cacheCheck = redisstore.HealthCheck(client)
			app.limiter = redisstore.NewFixedWindowLimiter(client, cfg.RequestsPerMinute, time.Minute)
			app.logger.Info("Rate limiting enabled",
				"store", "redis",
				"requests_per_minute", cfg.RequestsPerMinute)
			return
		}
		app.logger.Warn("Redis unavailable, continuing with in-memory rate limiting", redact.Attr(err))
	}

	app.limiter = apiMiddleware.NewMemoryLimiter(cfg.RequestsPerMinute)
	app.logger.Info("Rate limiting enabled",
		"store", "memory",
		"requests_per_minute", cfg.RequestsPerMinute)
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("Error closing redis connection", redact.Attr(err))
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", redact.Attr(err))
		}
	}

	app.logger.Info("Application shutdown completed")
}
