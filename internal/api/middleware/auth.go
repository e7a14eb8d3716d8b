package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer access token and adds the user ID to the
// request context. Every failure is a 401 UNAUTHENTICATED.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := shared.BearerToken(r)
		if !ok {
			unauthorized(w, r, "Not authenticated", auth.ErrMissingToken)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			msg := "Could not validate credentials"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "Token has expired"
			}
			unauthorized(w, r, msg, err)
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		log := logger.FromContext(ctx).With(slog.String("user_id", claims.UserID.String()))
		ctx = logger.WithLogger(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string, err error) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, shared.CodeUnauthenticated, msg, err)
}
