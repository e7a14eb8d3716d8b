package api

import (
	"net/http"

	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/store"
)

// ListHandler handles todo list endpoints.
type ListHandler struct {
	listService service.ListService
	pagination  config.PaginationConfig
	errors      *ErrorHandler
}

// NewListHandler creates a new ListHandler.
func NewListHandler(
	listService service.ListService,
	pagination config.PaginationConfig,
	errs *ErrorHandler,
) *ListHandler {
	return &ListHandler{listService: listService, pagination: pagination, errors: errs}
}

// ListLists handles GET /v1/lists.
//
// @Summary List own todo lists
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param search query string false "Name substring"
// @Success 200 {object} domain.Page[domain.TodoList]
// @Router /v1/lists [get]
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	filter, err := parseListFilter(r.URL.Query(), h.pagination)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	page, err := h.listService.List(r.Context(), userID, filter)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// CreateList handles POST /v1/lists.
//
// @Summary Create a todo list
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body CreateListRequest true "List payload"
// @Success 201 {object} domain.TodoList
// @Router /v1/lists [post]
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req CreateListRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	list, err := h.listService.Create(r.Context(), userID, req.ToInput())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, list)
}

// GetList handles GET /v1/lists/{listID}.
//
// @Summary Get a todo list
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param listID path string true "List ID"
// @Success 200 {object} domain.TodoList
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/lists/{listID} [get]
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	userID, listID, err := userAndPathID(r, ListIDParam, store.ErrListNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	list, err := h.listService.Get(r.Context(), userID, listID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// UpdateList handles PUT /v1/lists/{listID}.
//
// @Summary Update a todo list
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listID path string true "List ID"
// @Param payload body UpdateListRequest true "Fields to change"
// @Success 200 {object} domain.TodoList
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/lists/{listID} [put]
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	userID, listID, err := userAndPathID(r, ListIDParam, store.ErrListNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req UpdateListRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	list, err := h.listService.Update(r.Context(), userID, listID, req.ToPatch())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// DeleteList handles DELETE /v1/lists/{listID}. The list's tasks go with it.
//
// @Summary Delete a todo list
// @Tags lists
// @Security BearerAuth
// @Param listID path string true "List ID"
// @Success 204
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/lists/{listID} [delete]
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	userID, listID, err := userAndPathID(r, ListIDParam, store.ErrListNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if err := h.listService.Delete(r.Context(), userID, listID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}
