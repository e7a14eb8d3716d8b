package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthRouter(database, cache HealthCheck) http.Handler {
	h := NewHealthHandler("Todo List API", "1.2.3", database, cache)
	return testRouter(uuid.Nil, func(r chi.Router) {
		r.Get("/", h.Root)
		r.Get("/health", h.Health)
	})
}

func TestHealthHandler_Root(t *testing.T) {
	w := doRequest(t, healthRouter(nil, nil), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[RootResponse](t, w)
	assert.Equal(t, "Welcome to Todo List API", got.Message)
	assert.Equal(t, "1.2.3", got.Version)
	assert.Equal(t, "/docs/index.html", got.Docs)
}

func TestHealthHandler_Health(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name       string
		database   HealthCheck
		cache      HealthCheck
		wantStatus int
		want       HealthResponse
	}{
		{
			name:       "database only",
			database:   up,
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: StatusHealthy, Version: "1.2.3", Database: DependencyUp},
		},
		{
			name:       "database and cache",
			database:   up,
			cache:      up,
			wantStatus: http.StatusOK,
			want: HealthResponse{
				Status: StatusHealthy, Version: "1.2.3", Database: DependencyUp, Cache: DependencyUp,
			},
		},
		{
			name:       "database down",
			database:   down,
			wantStatus: http.StatusServiceUnavailable,
			want:       HealthResponse{Status: StatusDegraded, Version: "1.2.3", Database: DependencyDown},
		},
		{
			name:       "cache down",
			database:   up,
			cache:      down,
			wantStatus: http.StatusServiceUnavailable,
			want: HealthResponse{
				Status: StatusDegraded, Version: "1.2.3", Database: DependencyUp, Cache: DependencyDown,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, healthRouter(tc.database, tc.cache), http.MethodGet, "/health", "")

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.want, decodeBody[HealthResponse](t, w))
		})
	}
}

func TestHealthHandler_CheckHonorsTimeout(t *testing.T) {
	var deadlineSet bool
	check := func(ctx context.Context) error {
		_, deadlineSet = ctx.Deadline()
		return nil
	}

	w := doRequest(t, healthRouter(check, nil), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deadlineSet)
}
