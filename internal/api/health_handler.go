package api

import (
	"context"
	"net/http"
	"time"

	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/redact"
)

// healthCheckTimeout bounds each dependency probe.
const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one dependency and returns nil when it is reachable.
type HealthCheck func(ctx context.Context) error

// HealthHandler serves the unauthenticated root and health endpoints.
type HealthHandler struct {
	appName  string
	version  string
	database HealthCheck
	cache    HealthCheck
}

// NewHealthHandler creates a HealthHandler. cache may be nil when no shared
// rate limit store is configured.
func NewHealthHandler(appName, version string, database, cache HealthCheck) *HealthHandler {
	return &HealthHandler{appName: appName, version: version, database: database, cache: cache}
}

// Root handles GET /.
//
// @Summary API information
// @Tags meta
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message: "Welcome to " + h.appName,
		Version: h.version,
		Docs:    "/docs/index.html",
	})
}

// Health handles GET /health. It answers 503 when any dependency is down.
//
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: StatusHealthy, Version: h.version}

	resp.Database = h.probe(r.Context(), "database", h.database)
	if h.cache != nil {
		resp.Cache = h.probe(r.Context(), "cache", h.cache)
	}

	status := http.StatusOK
	if resp.Database == DependencyDown || resp.Cache == DependencyDown {
		resp.Status = StatusDegraded
		status = http.StatusServiceUnavailable
	}

	shared.RespondWithJSON(w, r, status, resp)
}

func (h *HealthHandler) probe(ctx context.Context, name string, check HealthCheck) string {
	if check == nil {
		return DependencyDown
	}
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := check(ctx); err != nil {
		logger.FromContext(ctx).Warn("health check failed",
			"dependency", name,
			redact.Attr(err))
		return DependencyDown
	}
	return DependencyUp
}
