package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastboard/admin-api/internal/config"
)

const testSecret = "test-secret-key-thats-long-enough-for-hmac"

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("accepts a sufficiently long secret", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:                   testSecret,
			TokenLifetimeMinutes:        60,
			RefreshTokenLifetimeMinutes: 10080,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("rejects a short secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{JWTSecret: "too-short"})
		assert.Error(t, err)
	})
}

func TestAccessTokenLifecycle(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	adminID := uuid.New()

	t.Run("generated token validates and carries the admin claims", func(t *testing.T) {
		t.Parallel()
		svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })

		token, err := svc.GenerateToken(context.Background(), adminID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, adminID, claims.AdminID)
		assert.Equal(t, adminID.String(), claims.Subject)
		assert.Equal(t, "access", claims.TokenType)
		assert.NotEmpty(t, claims.ID)
		assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("expired token returns ErrExpiredToken", func(t *testing.T) {
		t.Parallel()
		clock := now
		svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return clock })

		token, err := svc.GenerateToken(context.Background(), adminID)
		require.NoError(t, err)

		clock = now.Add(time.Hour + 3*time.Minute)
		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token just past expiry is accepted within the clock skew", func(t *testing.T) {
		t.Parallel()
		clock := now
		svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return clock })

		token, err := svc.GenerateToken(context.Background(), adminID)
		require.NoError(t, err)

		clock = now.Add(time.Hour + time.Minute)
		_, err = svc.ValidateToken(context.Background(), token)
		assert.NoError(t, err)
	})

	t.Run("token signed with a different secret is invalid", func(t *testing.T) {
		t.Parallel()
		svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })
		other := NewTestJWTService("another-secret-key-also-long-enough-here", time.Hour, func() time.Time { return now })

		token, err := other.GenerateToken(context.Background(), adminID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed token is invalid", func(t *testing.T) {
		t.Parallel()
		svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })

		_, err := svc.ValidateToken(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("refresh token presented as access token is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })

		refresh, err := svc.GenerateRefreshToken(context.Background(), adminID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), refresh)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})
}

func TestRefreshTokenLifecycle(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	adminID := uuid.New()

	t.Run("generated refresh token validates with the longer lifetime", func(t *testing.T) {
		t.Parallel()
		clock := now
		svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return clock })

		token, err := svc.GenerateRefreshToken(context.Background(), adminID)
		require.NoError(t, err)

		// Past the access lifetime but inside the refresh lifetime.
		clock = now.Add(2 * time.Hour)
		claims, err := svc.ValidateRefreshToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, adminID, claims.AdminID)
		assert.Equal(t, "refresh", claims.TokenType)
	})

	t.Run("expired refresh token returns ErrExpiredRefreshToken", func(t *testing.T) {
		t.Parallel()
		clock := now
		svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return clock })

		token, err := svc.GenerateRefreshToken(context.Background(), adminID)
		require.NoError(t, err)

		clock = now.Add(5 * time.Hour)
		_, err = svc.ValidateRefreshToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredRefreshToken)
	})

	t.Run("access token presented as refresh token is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })

		access, err := svc.GenerateToken(context.Background(), adminID)
		require.NoError(t, err)

		_, err = svc.ValidateRefreshToken(context.Background(), access)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("malformed refresh token returns the refresh sentinel", func(t *testing.T) {
		t.Parallel()
		svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })

		_, err := svc.ValidateRefreshToken(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}
