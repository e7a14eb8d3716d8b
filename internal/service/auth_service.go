package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/phrazzld/todolist-api/internal/service/auth"
	"github.com/phrazzld/todolist-api/internal/store"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName *string
	LastName  *string
}

// RefreshInput carries the credential presented to the refresh endpoint.
// RefreshToken takes precedence; without it AccessToken is re-issued.
type RefreshInput struct {
	RefreshToken string
	AccessToken  string
}

// AuthResult is a user together with a freshly issued token pair.
type AuthResult struct {
	User   *domain.User
	Tokens *auth.TokenPair
}

// AuthService handles registration, login and token refresh.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, in RefreshInput) (*auth.TokenPair, error)
}

type authService struct {
	tx       store.Transactor
	users    store.UserStore
	jwt      auth.JWTService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

var _ AuthService = (*authService)(nil)

// NewAuthService creates an AuthService.
func NewAuthService(
	tx store.Transactor,
	users store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) AuthService {
	if log == nil {
		log = slog.Default()
	}
	return &authService{
		tx:       tx,
		users:    users,
		jwt:      jwtService,
		hasher:   hasher,
		verifier: verifier,
		logger:   log.With(slog.String("component", "auth_service")),
	}
}

// Register creates the account and logs the user straight in.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(in.Email, in.Username, in.Password, in.FirstName, in.LastName)
	if err != nil {
		return nil, NewServiceError("auth", "register", "invalid user", err)
	}

	user.HashedPassword, err = s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", redact.Attr(err))
		return nil, NewServiceError("auth", "register", "hash password", err)
	}
	user.Password = ""

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.users.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("registration conflict", slog.String("username", user.Username))
		} else {
			log.Error("failed to create user", redact.Attr(err))
		}
		return nil, NewServiceError("auth", "register", "create user", err)
	}

	tokens, err := s.jwt.GenerateTokenPair(ctx, user.ID)
	if err != nil {
		return nil, NewServiceError("auth", "register", "issue tokens", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return &AuthResult{User: user, Tokens: tokens}, nil
}

// Login verifies the credentials. An unknown email and a wrong password both
// yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login for unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to load user for login", redact.Attr(err))
		return nil, NewServiceError("auth", "login", "load user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			log.Warn("password comparison failed", redact.Attr(err))
		}
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.jwt.GenerateTokenPair(ctx, user.ID)
	if err != nil {
		return nil, NewServiceError("auth", "login", "issue tokens", err)
	}

	log.Debug("user logged in", slog.String("user_id", user.ID.String()))
	return &AuthResult{User: user, Tokens: tokens}, nil
}

// Refresh exchanges a refresh token, or failing that a still valid access
// token, for a new pair. The user must still exist.
func (s *authService) Refresh(ctx context.Context, in RefreshInput) (*auth.TokenPair, error) {
	var (
		claims *auth.Claims
		err    error
	)
	switch {
	case in.RefreshToken != "":
		claims, err = s.jwt.ValidateRefreshToken(ctx, in.RefreshToken)
	case in.AccessToken != "":
		claims, err = s.jwt.ValidateToken(ctx, in.AccessToken)
	default:
		err = auth.ErrMissingToken
	}
	if err != nil {
		return nil, err
	}

	if err := s.ensureUser(ctx, claims.UserID); err != nil {
		return nil, err
	}

	tokens, err := s.jwt.GenerateTokenPair(ctx, claims.UserID)
	if err != nil {
		return nil, NewServiceError("auth", "refresh", "issue tokens", err)
	}
	return tokens, nil
}

func (s *authService) ensureUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return auth.ErrInvalidToken
		}
		return NewServiceError("auth", "refresh", "load user", err)
	}
	return nil
}
