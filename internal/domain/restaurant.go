package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Restaurant-specific validation errors.
var (
	ErrEmptyRestaurantID   = errors.New("restaurant ID cannot be empty")
	ErrEmptyRestaurantName = errors.New("restaurant name cannot be empty")
)

// Restaurant represents an onboarded restaurant. Its ID doubles as the ID of
// the owner account at the identity provider, which is how password updates
// for a restaurant reach the right identity record.
type Restaurant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the Restaurant has valid data.
func (r *Restaurant) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRestaurantID
	}
	if r.Name == "" {
		return ErrEmptyRestaurantName
	}
	return nil
}
