package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Profile {
		return &Profile{ID: uuid.New(), FullName: "Asha", Role: RoleRider}
	}

	t.Run("valid rider profile", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing ID", func(t *testing.T) {
		t.Parallel()
		p := valid()
		p.ID = uuid.Nil
		assert.ErrorIs(t, p.Validate(), ErrEmptyProfileID)
	})

	t.Run("missing full name", func(t *testing.T) {
		t.Parallel()
		p := valid()
		p.FullName = ""
		assert.ErrorIs(t, p.Validate(), ErrEmptyFullName)
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()
		p := valid()
		p.Role = "customer"
		assert.ErrorIs(t, p.Validate(), ErrInvalidRole)
	})
}

func TestNewRiderProfile(t *testing.T) {
	t.Parallel()

	t.Run("keys the profile by the identity ID", func(t *testing.T) {
		t.Parallel()
		identityID := uuid.New()
		p, err := NewRiderProfile(identityID, "Asha", "9876543210", "asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, identityID, p.ID)
		assert.Equal(t, RoleRider, p.Role)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("rejects an empty full name", func(t *testing.T) {
		t.Parallel()
		_, err := NewRiderProfile(uuid.New(), "", "", "")
		assert.ErrorIs(t, err, ErrEmptyFullName)
	})
}

func TestPushNotificationValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		notification PushNotification
		wantErr      error
	}{
		{"title only", PushNotification{To: "ExponentPushToken[a]", Title: "hi"}, nil},
		{"body only", PushNotification{To: "ExponentPushToken[a]", Body: "hi"}, nil},
		{"missing recipient", PushNotification{Title: "hi"}, ErrEmptyRecipient},
		{"missing title and body", PushNotification{To: "ExponentPushToken[a]"}, ErrEmptyBody},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.notification.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRestaurantValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid restaurant", func(t *testing.T) {
		t.Parallel()
		r := &Restaurant{ID: uuid.New(), Name: "Spice Route"}
		assert.NoError(t, r.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		r := &Restaurant{ID: uuid.New()}
		assert.ErrorIs(t, r.Validate(), ErrEmptyRestaurantName)
	})
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("full_name", "full name is required", ErrValidation)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "full_name full name is required", err.Error())

	wrapped := fmt.Errorf("provisioning: %w", err)
	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "full_name", ve.Field)
}
