package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func testAuthConfig(secret string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   secret,
		BCryptCost:                  4,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
	}
}

func newTestService(t *testing.T, secret string, at time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(testAuthConfig(secret), func() time.Time { return at })
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantErr string
	}{
		{"valid", testAuthConfig(testSecret), ""},
		{"short secret", testAuthConfig("too-short"), "at least 32 characters"},
		{
			"zero lifetime",
			config.AuthConfig{JWTSecret: testSecret, RefreshTokenLifetimeMinutes: 10},
			"lifetimes must be positive",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, err := NewJWTService(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	svc := newTestService(t, testSecret, fixedTime)

	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateTokenPair(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	svc := newTestService(t, testSecret, fixedTime)

	pair, err := svc.GenerateTokenPair(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, fixedTime.Add(time.Hour), pair.ExpiresAt)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	access, err := svc.ValidateToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, access.UserID)

	refresh, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refresh.UserID)
	assert.Equal(t, fixedTime.Add(24*time.Hour).Unix(), refresh.ExpiresAt.Unix())
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	issuer := newTestService(t, testSecret, fixedTime)

	access, err := issuer.GenerateToken(ctx, userID)
	require.NoError(t, err)
	refresh, err := issuer.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwtCustomClaims{
		UserID:    userID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwtCustomClaims{
		UserID:    userID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name      string
		validator *hmacJWTService
		token     string
		wantErr   error
	}{
		{"valid token", newTestService(t, testSecret, fixedTime.Add(30*time.Minute)), access, nil},
		{"within clock skew", newTestService(t, testSecret, fixedTime.Add(61*time.Minute)), access, nil},
		{"expired token", newTestService(t, testSecret, fixedTime.Add(2*time.Hour)), access, ErrExpiredToken},
		{"wrong secret", newTestService(t, wrongSecret, fixedTime), access, ErrInvalidToken},
		{"malformed token", issuer, "not-a-jwt", ErrInvalidToken},
		{"empty token", issuer, "", ErrInvalidToken},
		{"refresh token used as access", issuer, refresh, ErrWrongTokenType},
		{"unsigned token", issuer, noneToken, ErrInvalidToken},
		{"unexpected algorithm", issuer, hs512Token, ErrInvalidToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			claims, err := tt.validator.ValidateToken(ctx, tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestValidateRefreshToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	issuer := newTestService(t, testSecret, fixedTime)

	access, err := issuer.GenerateToken(ctx, userID)
	require.NoError(t, err)
	refresh, err := issuer.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	tests := []struct {
		name      string
		validator *hmacJWTService
		token     string
		wantErr   error
	}{
		{"valid refresh token", newTestService(t, testSecret, fixedTime.Add(23*time.Hour)), refresh, nil},
		{"expired refresh token", newTestService(t, testSecret, fixedTime.Add(25*time.Hour)), refresh, ErrExpiredRefreshToken},
		{"wrong secret", newTestService(t, wrongSecret, fixedTime), refresh, ErrInvalidRefreshToken},
		{"malformed", issuer, "abc.def.ghi", ErrInvalidRefreshToken},
		{"access token used as refresh", issuer, access, ErrWrongTokenType},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			claims, err := tt.validator.ValidateRefreshToken(ctx, tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, TokenTypeRefresh, claims.TokenType)
		})
	}
}
