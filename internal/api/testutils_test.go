package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var (
	testPagination = config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100}
	testTime       = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
)

// testRouter mounts routes behind a middleware that authenticates every
// request as userID. A nil userID leaves requests anonymous.
func testRouter(userID uuid.UUID, mount func(r chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := shared.WithTraceID(req.Context(), "test-trace")
			if userID != uuid.Nil {
				ctx = shared.WithUserID(ctx, userID)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	mount(r)
	return r
}

func newRequest(method, path, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, path, nil)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(h, newRequest(method, path, body))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return resp
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func testList(ownerID uuid.UUID, name string) *domain.TodoList {
	return &domain.TodoList{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Color:     domain.DefaultColor,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func testTask(listID uuid.UUID, title string) *domain.Task {
	return &domain.Task{
		ID:        uuid.New(),
		ListID:    listID,
		Title:     title,
		Priority:  domain.PriorityMedium,
		Tags:      []string{},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}
