package api

import (
	"net/http"

	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/service"
)

// SearchHandler serves cross-entity search and the analytics summary.
type SearchHandler struct {
	searchService    service.SearchService
	analyticsService service.AnalyticsService
	pagination       config.PaginationConfig
	errors           *ErrorHandler
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(
	searchService service.SearchService,
	analyticsService service.AnalyticsService,
	pagination config.PaginationConfig,
	errs *ErrorHandler,
) *SearchHandler {
	return &SearchHandler{
		searchService:    searchService,
		analyticsService: analyticsService,
		pagination:       pagination,
		errors:           errs,
	}
}

// Search handles GET /v1/search.
//
// @Summary Search tasks and lists
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param q query string true "Substring to match"
// @Param type query string false "Sections to search" Enums(all, tasks, lists) default(all)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} service.SearchResult
// @Failure 422 {object} shared.ErrorResponse
// @Router /v1/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	q := r.URL.Query()
	searchType, err := service.ParseSearchType(q.Get("type"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	page, err := parsePageRequest(q, h.pagination)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	result, err := h.searchService.Search(r.Context(), userID, service.SearchQuery{
		Query: q.Get("q"),
		Type:  searchType,
		Page:  page,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Analytics handles GET /v1/analytics.
//
// @Summary Usage summary
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param period query string false "Lookback window" Enums(week, month, year, all) default(month)
// @Success 200 {object} domain.Analytics
// @Router /v1/analytics [get]
func (h *SearchHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	period := domain.ParsePeriod(r.URL.Query().Get("period"))
	summary, err := h.analyticsService.Summary(r.Context(), userID, period)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
