package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/phrazzld/todolist-api/docs" // registers the OpenAPI document
	"github.com/phrazzld/todolist-api/internal/api"
	apiMiddleware "github.com/phrazzld/todolist-api/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// requestTimeout caps how long a single request may run.
const requestTimeout = 30 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.CORS(app.config.CORS))
	if app.limiter != nil {
		r.Use(apiMiddleware.RateLimit(app.limiter))
	}

	errs := api.NewErrorHandler(app.config.Server.Debug)
	pagination := app.config.Pagination

	healthHandler := api.NewHealthHandler(app.config.Server.AppName, app.config.Server.Version,
		app.dbCheck, app.cacheCheck)
	authHandler := api.NewAuthHandler(app.authService, errs)
	userHandler := api.NewUserHandler(app.userService, errs)
	listHandler := api.NewListHandler(app.listService, pagination, errs)
	taskHandler := api.NewTaskHandler(app.taskService, pagination, errs)
	categoryHandler := api.NewCategoryHandler(app.categoryService, errs)
	searchHandler := api.NewSearchHandler(app.searchService, app.analyticsService, pagination, errs)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Route("/v1", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)

			r.Get("/users/me", userHandler.GetMe)
			r.Put("/users/me", userHandler.UpdateMe)

			r.Route("/lists", func(r chi.Router) {
				r.Get("/", listHandler.ListLists)
				r.Post("/", listHandler.CreateList)
				r.Route("/{"+api.ListIDParam+"}", func(r chi.Router) {
					r.Get("/", listHandler.GetList)
					r.Put("/", listHandler.UpdateList)
					r.Delete("/", listHandler.DeleteList)
					r.Get("/tasks", taskHandler.ListTasks)
					r.Post("/tasks", taskHandler.CreateTask)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/bulk", taskHandler.BulkCreateTasks)
				r.Patch("/bulk/update", taskHandler.BulkUpdateTasks)
				r.Delete("/bulk/delete", taskHandler.BulkDeleteTasks)
				r.Route("/{"+api.TaskIDParam+"}", func(r chi.Router) {
					r.Get("/", taskHandler.GetTask)
					r.Put("/", taskHandler.UpdateTask)
					r.Delete("/", taskHandler.DeleteTask)
					r.Patch("/toggle", taskHandler.ToggleTask)
				})
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryHandler.ListCategories)
				r.Post("/", categoryHandler.CreateCategory)
				r.Route("/{"+api.CategoryIDParam+"}", func(r chi.Router) {
					r.Get("/", categoryHandler.GetCategory)
					r.Put("/", categoryHandler.UpdateCategory)
					r.Delete("/", categoryHandler.DeleteCategory)
				})
			})

			r.Get("/search", searchHandler.Search)
			r.Get("/analytics", searchHandler.Analytics)
		})
	})

	return r
}
