package api

import (
	"net/http"

	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/service"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	userService service.UserService
	errors      *ErrorHandler
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, errs *ErrorHandler) *UserHandler {
	return &UserHandler{userService: userService, errors: errs}
}

// GetMe handles GET /v1/users/me.
//
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Router /v1/users/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateMe handles PUT /v1/users/me.
//
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} domain.User
// @Failure 409 {object} shared.ErrorResponse
// @Router /v1/users/me [put]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserIDFromContext(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, req.ToPatch())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}
