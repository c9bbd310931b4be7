package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastboard/admin-api/internal/api/shared"
	"github.com/feastboard/admin-api/internal/mocks"
	"github.com/feastboard/admin-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()

	newHandler := func(jwtService *mocks.MockJWTService) (http.Handler, *bool, *uuid.UUID) {
		called := false
		var seenID uuid.UUID
		mw := NewAuthMiddleware(jwtService)
		h := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			seenID, _ = GetAdminID(r)
			w.WriteHeader(http.StatusOK)
		}))
		return h, &called, &seenID
	}

	t.Run("valid token passes through with the admin ID in context", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{AdminID: adminID, TokenType: "access"}}
		h, called, seenID := newHandler(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *called)
		assert.Equal(t, adminID, *seenID)
	})

	t.Run("missing header returns 401", func(t *testing.T) {
		t.Parallel()

		h, called, _ := newHandler(&mocks.MockJWTService{})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *called)
	})

	t.Run("non-bearer header returns 401", func(t *testing.T) {
		t.Parallel()

		h, called, _ := newHandler(&mocks.MockJWTService{})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *called)
	})

	t.Run("expired token returns 401 with a distinct message", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		h, called, _ := newHandler(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token expired")
		assert.False(t, *called)
	})

	t.Run("invalid token returns 401", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		h, called, _ := newHandler(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *called)
	})

	t.Run("unexpected validation error returns 500", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: assert.AnError}
		h, called, _ := newHandler(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, *called)
	})
}

func TestGetAdminID(t *testing.T) {
	t.Parallel()

	t.Run("absent from context", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := GetAdminID(req)
		assert.False(t, ok)
	})

	t.Run("present in context", func(t *testing.T) {
		t.Parallel()
		adminID := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), shared.AdminIDContextKey, adminID)
		got, ok := GetAdminID(req.WithContext(ctx))
		assert.True(t, ok)
		assert.Equal(t, adminID, got)
	})
}
