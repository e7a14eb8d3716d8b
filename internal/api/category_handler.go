package api

import (
	"net/http"

	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/store"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
	errors          *ErrorHandler
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryService, errs *ErrorHandler) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, errors: errs}
}

// ListCategories handles GET /v1/categories. The result is not paginated.
//
// @Summary List own categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Category
// @Router /v1/categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	categories, err := h.categoryService.List(r.Context(), userID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// CreateCategory handles POST /v1/categories.
//
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body CreateCategoryRequest true "Category payload"
// @Success 201 {object} domain.Category
// @Router /v1/categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req CreateCategoryRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	category, err := h.categoryService.Create(r.Context(), userID, req.Name, req.Color)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, category)
}

// GetCategory handles GET /v1/categories/{categoryID}.
//
// @Summary Get a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param categoryID path string true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/categories/{categoryID} [get]
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, categoryID, err := userAndPathID(r, CategoryIDParam, store.ErrCategoryNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	category, err := h.categoryService.Get(r.Context(), userID, categoryID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// UpdateCategory handles PUT /v1/categories/{categoryID}.
//
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param categoryID path string true "Category ID"
// @Param payload body UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} domain.Category
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/categories/{categoryID} [put]
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, categoryID, err := userAndPathID(r, CategoryIDParam, store.ErrCategoryNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req UpdateCategoryRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	category, err := h.categoryService.Update(r.Context(), userID, categoryID, req.ToPatch())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// DeleteCategory handles DELETE /v1/categories/{categoryID}. Tasks that
// carried the category keep existing without one.
//
// @Summary Delete a category
// @Tags categories
// @Security BearerAuth
// @Param categoryID path string true "Category ID"
// @Success 204
// @Failure 404 {object} shared.ErrorResponse
// @Router /v1/categories/{categoryID} [delete]
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, categoryID, err := userAndPathID(r, CategoryIDParam, store.ErrCategoryNotFound)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if err := h.categoryService.Delete(r.Context(), userID, categoryID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}
