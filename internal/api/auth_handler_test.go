package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/mocks"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/service/auth"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authRouter(authService service.AuthService) http.Handler {
	h := NewAuthHandler(authService, NewErrorHandler(false))
	return testRouter(uuid.Nil, func(r chi.Router) {
		r.Post("/v1/auth/register", h.Register)
		r.Post("/v1/auth/login", h.Login)
		r.Post("/v1/auth/refresh", h.RefreshToken)
		r.Post("/v1/auth/logout", h.Logout)
	})
}

func testAuthResult() *service.AuthResult {
	return &service.AuthResult{
		User: &domain.User{ID: uuid.New(), Email: "ada@example.com", Username: "ada", CreatedAt: testTime},
		Tokens: &auth.TokenPair{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresAt:    testTime.Add(30 * time.Minute),
		},
	}
}

func TestAuthHandler_Register(t *testing.T) {
	validBody := `{"email":"ada@example.com","username":"ada","password":"password1"}`

	tests := []struct {
		name       string
		body       string
		mockErr    error
		callsSvc   bool
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "success",
			body:       validBody,
			callsSvc:   true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate email",
			body:       validBody,
			callsSvc:   true,
			mockErr:    service.NewServiceError("auth", "register", "", store.ErrEmailExists),
			wantStatus: http.StatusConflict,
			wantCode:   shared.CodeConflict,
			wantMsg:    "Email already registered",
		},
		{
			name:       "short password",
			body:       `{"email":"ada@example.com","username":"ada","password":"short"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   shared.CodeValidation,
		},
		{
			name:       "missing email",
			body:       `{"username":"ada","password":"password1"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   shared.CodeValidation,
			wantMsg:    "Invalid email: required field",
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   shared.CodeInvalidRequest,
			wantMsg:    "Invalid request body",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.MockAuthService)
			if tc.callsSvc {
				var res *service.AuthResult
				if tc.mockErr == nil {
					res = testAuthResult()
				}
				svc.On("Register", mock.Anything, service.RegisterInput{
					Email: "ada@example.com", Username: "ada", Password: "password1",
				}).Return(res, tc.mockErr)
			}

			w := doRequest(t, authRouter(svc), http.MethodPost, "/v1/auth/register", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantCode == "" {
				resp := decodeBody[AuthResponse](t, w)
				assert.Equal(t, "access", resp.Token)
				assert.Equal(t, "refresh", resp.RefreshToken)
				assert.Equal(t, "ada", resp.User.Username)
				assert.NotContains(t, w.Body.String(), "password")
			} else {
				resp := decodeError(t, w)
				assert.Equal(t, tc.wantCode, resp.Code)
				assert.Equal(t, "test-trace", resp.TraceID)
				if tc.wantMsg != "" {
					assert.Equal(t, tc.wantMsg, resp.Error)
				}
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mocks.MockAuthService)
		svc.On("Login", mock.Anything, "ada@example.com", "password1").Return(testAuthResult(), nil)

		w := doRequest(t, authRouter(svc), http.MethodPost, "/v1/auth/login",
			`{"email":"ada@example.com","password":"password1"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[AuthResponse](t, w)
		assert.Equal(t, "access", resp.Token)
		svc.AssertExpectations(t)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := new(mocks.MockAuthService)
		svc.On("Login", mock.Anything, "ada@example.com", "wrong-pass").
			Return(nil, service.ErrInvalidCredentials)

		w := doRequest(t, authRouter(svc), http.MethodPost, "/v1/auth/login",
			`{"email":"ada@example.com","password":"wrong-pass"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, shared.CodeUnauthenticated, resp.Code)
		assert.Equal(t, "Incorrect email or password", resp.Error)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	pair := &auth.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresAt: testTime}

	t.Run("refresh token in body", func(t *testing.T) {
		svc := new(mocks.MockAuthService)
		svc.On("Refresh", mock.Anything, service.RefreshInput{RefreshToken: "old-refresh"}).Return(pair, nil)

		w := doRequest(t, authRouter(svc), http.MethodPost, "/v1/auth/refresh",
			`{"refresh_token":"old-refresh"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[RefreshTokenResponse](t, w)
		assert.Equal(t, "new-access", resp.Token)
		assert.Equal(t, "new-refresh", resp.RefreshToken)
		assert.Equal(t, "bearer", resp.TokenType)
		svc.AssertExpectations(t)
	})

	t.Run("bearer access token without body", func(t *testing.T) {
		svc := new(mocks.MockAuthService)
		svc.On("Refresh", mock.Anything, service.RefreshInput{AccessToken: "current-access"}).Return(pair, nil)

		req := newRequest(http.MethodPost, "/v1/auth/refresh", "")
		req.Header.Set("Authorization", "Bearer current-access")
		w := serve(authRouter(svc), req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc := new(mocks.MockAuthService)
		svc.On("Refresh", mock.Anything, service.RefreshInput{RefreshToken: "bad"}).
			Return(nil, auth.ErrInvalidRefreshToken)

		w := doRequest(t, authRouter(svc), http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"bad"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid refresh token", decodeError(t, w).Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mocks.MockAuthService)

		w := doRequest(t, authRouter(svc), http.MethodPost, "/v1/auth/refresh", `{"refresh_token":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	w := doRequest(t, authRouter(new(mocks.MockAuthService)), http.MethodPost, "/v1/auth/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully logged out", decodeBody[MessageResponse](t, w).Message)
}
