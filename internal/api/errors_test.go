package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/identity"
	"github.com/feastboard/admin-api/internal/service/auth"
	"github.com/feastboard/admin-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"expired refresh token", auth.ErrExpiredRefreshToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"restaurant not found", store.ErrRestaurantNotFound, http.StatusNotFound},
		{"profile not found", store.ErrProfileNotFound, http.StatusNotFound},
		{"account not found", identity.ErrAccountNotFound, http.StatusNotFound},
		{"profile exists", store.ErrProfileExists, http.StatusConflict},
		{"account exists", identity.ErrAccountExists, http.StatusConflict},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrProfileNotFound), http.StatusNotFound},
		{"unknown", errors.New("something broke"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"restaurant not found", store.ErrRestaurantNotFound, "Restaurant not found"},
		{"profile not found", store.ErrProfileNotFound, "Rider not found"},
		{"account exists", identity.ErrAccountExists, "Account already exists"},
		{"expired token", auth.ErrExpiredToken, "Invalid token"},
		{"internal detail hidden", errors.New("pq: connection refused host=10.0.0.5"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}

	t.Run("validation error names the field", func(t *testing.T) {
		t.Parallel()
		err := domain.NewValidationError("full_name", "full name is required", domain.ErrValidation)
		assert.Equal(t, "Invalid full_name: full name is required", GetSafeErrorMessage(err))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	validate := validator.New()

	t.Run("required field names the field and the rule", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(LoginRequest{Password: "x"})
		assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(err))
	})

	t.Run("min violation maps to too short", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(UpdateRestaurantPasswordRequest{
			RestaurantID: "7b8ddb20-b0a3-4a26-a0e5-0f1746fbbbd1",
			NewPassword:  "short",
		})
		assert.Equal(t, "Invalid NewPassword: too short", SanitizeValidationError(err))
	})

	t.Run("non-validator error falls back to a generic message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
