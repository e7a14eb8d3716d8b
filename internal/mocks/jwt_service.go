package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService with overridable functions.
// Unset functions fall back to the fixed fields.
type MockJWTService struct {
	GenerateTokenFn        func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn        func(ctx context.Context, token string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, token string) (*auth.Claims, error)
	GenerateTokenPairFn    func(ctx context.Context, userID uuid.UUID) (*auth.TokenPair, error)

	Token        string
	RefreshToken string
	ExpiresAt    time.Time
	Err          error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// NewMockJWTService returns a mock that issues fixed tokens and rejects
// every token it is asked to validate.
func NewMockJWTService() *MockJWTService {
	return &MockJWTService{
		Token:        "mock-access-token",
		RefreshToken: "mock-refresh-token",
		ExpiresAt:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return nil, auth.ErrInvalidToken
}

func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID)
	}
	return m.RefreshToken, m.Err
}

func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, token)
	}
	return nil, auth.ErrInvalidRefreshToken
}

func (m *MockJWTService) GenerateTokenPair(ctx context.Context, userID uuid.UUID) (*auth.TokenPair, error) {
	if m.GenerateTokenPairFn != nil {
		return m.GenerateTokenPairFn(ctx, userID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &auth.TokenPair{
		AccessToken:  m.Token,
		RefreshToken: m.RefreshToken,
		ExpiresAt:    m.ExpiresAt,
	}, nil
}

// AcceptUser makes ValidateToken accept any token as an access token for userID.
func (m *MockJWTService) AcceptUser(userID uuid.UUID) *MockJWTService {
	m.ValidateTokenFn = func(context.Context, string) (*auth.Claims, error) {
		return &auth.Claims{
			UserID:    userID,
			TokenType: auth.TokenTypeAccess,
			Subject:   userID.String(),
		}, nil
	}
	return m
}
