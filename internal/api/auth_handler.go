package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService service.AuthService
	errors      *ErrorHandler
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService, errs *ErrorHandler) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		errors:      errs,
	}
}

// Register handles POST /v1/auth/register.
//
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body RegisterRequest true "Registration payload"
// @Success 201 {object} AuthResponse
// @Failure 409 {object} shared.ErrorResponse
// @Failure 422 {object} shared.ErrorResponse
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	res, err := h.authService.Register(r.Context(), req.ToInput())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newAuthResponse(res))
}

// Login handles POST /v1/auth/login.
//
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} shared.ErrorResponse
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeAndValidate(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	res, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var opts []shared.ResponseOption
		if errors.Is(err, service.ErrInvalidCredentials) {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		h.errors.Handle(w, r, err, opts...)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newAuthResponse(res))
}

// RefreshToken handles POST /v1/auth/refresh. A refresh_token in the body is
// exchanged for a new pair; with no body the bearer access token is re-issued.
//
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body RefreshTokenRequest false "Refresh token"
// @Success 200 {object} RefreshTokenResponse
// @Failure 401 {object} shared.ErrorResponse
// @Router /v1/auth/refresh [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		h.errors.Handle(w, r, err)
		return
	}

	in := service.RefreshInput{RefreshToken: req.RefreshToken}
	if token, ok := shared.BearerToken(r); ok {
		in.AccessToken = token
	}

	pair, err := h.authService.Refresh(r.Context(), in)
	if err != nil {
		h.errors.Handle(w, r, err, shared.WithElevatedLogLevel())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newRefreshTokenResponse(pair))
}

// Logout handles POST /v1/auth/logout. It always succeeds; the client
// discards its tokens.
//
// @Summary Log out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Successfully logged out"})
}
