package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/store"
)

// Path parameter names used by the router.
const (
	ListIDParam     = "listID"
	TaskIDParam     = "taskID"
	CategoryIDParam = "categoryID"
)

// getUserIDFromContext extracts the authenticated user's UUID from the request context.
// The user ID is expected to be placed in the context by the authentication middleware.
func getUserIDFromContext(r *http.Request) (uuid.UUID, error) {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// getPathUUID extracts a UUID from the URL path parameters. A missing or
// malformed value cannot name an existing row, so it yields notFound.
func getPathUUID(r *http.Request, paramName string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, paramName))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}

// userAndPathID is a composite helper that extracts both the user ID from
// context and a UUID from the path parameters.
func userAndPathID(r *http.Request, paramName string, notFound error) (uuid.UUID, uuid.UUID, error) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	pathID, err := getPathUUID(r, paramName, notFound)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, pathID, nil
}

// parsePageRequest reads page and limit. page defaults to 1, limit to the
// configured default, and limit may not exceed the configured maximum.
func parsePageRequest(q url.Values, cfg config.PaginationConfig) (domain.PageRequest, error) {
	page, err := intParam(q, "page", 1)
	if err != nil {
		return domain.PageRequest{}, err
	}
	if page < 1 {
		return domain.PageRequest{}, domain.NewValidationError("page", "must be at least 1", nil)
	}

	limit, err := intParam(q, "limit", cfg.DefaultPageSize)
	if err != nil {
		return domain.PageRequest{}, err
	}
	if limit < 1 || limit > cfg.MaxPageSize {
		return domain.PageRequest{}, domain.NewValidationError(
			"limit", "must be between 1 and "+strconv.Itoa(cfg.MaxPageSize), nil)
	}

	return domain.PageRequest{Page: page, Limit: limit}, nil
}

// parseListFilter reads the list collection query.
func parseListFilter(q url.Values, cfg config.PaginationConfig) (store.ListFilter, error) {
	page, err := parsePageRequest(q, cfg)
	if err != nil {
		return store.ListFilter{}, err
	}
	return store.ListFilter{Search: strings.TrimSpace(q.Get("search")), Page: page}, nil
}

// parseTaskFilter reads the filters, sort order and page of a task listing.
func parseTaskFilter(q url.Values, cfg config.PaginationConfig) (store.TaskFilter, error) {
	page, err := parsePageRequest(q, cfg)
	if err != nil {
		return store.TaskFilter{}, err
	}
	filter := store.TaskFilter{
		Search:    strings.TrimSpace(q.Get("search")),
		SortBy:    store.ParseTaskSortField(q.Get("sort_by")),
		Ascending: strings.EqualFold(q.Get("sort_order"), "asc"),
		Page:      page,
	}

	if raw := q.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return store.TaskFilter{}, domain.NewValidationError("completed", "must be true or false", nil)
		}
		filter.Completed = &completed
	}

	if raw := q.Get("priority"); raw != "" {
		priority := domain.Priority(strings.ToLower(raw))
		if !priority.Valid() {
			return store.TaskFilter{}, domain.NewValidationError(
				"priority", "must be one of low, medium, high, urgent", nil)
		}
		filter.Priority = &priority
	}

	if raw := q.Get("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return store.TaskFilter{}, domain.NewValidationError("category_id", "must be a UUID", domain.ErrInvalidID)
		}
		filter.CategoryID = &categoryID
	}

	return filter, nil
}

func intParam(q url.Values, name string, fallback int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer", nil)
	}
	return n, nil
}
