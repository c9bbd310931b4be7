package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Profile-specific validation errors.
var (
	ErrEmptyProfileID = errors.New("profile ID cannot be empty")
	ErrEmptyFullName  = errors.New("full name cannot be empty")
)

// Role identifies the kind of account a Profile belongs to.
type Role string

const (
	RoleRider Role = "rider"
	RoleAdmin Role = "admin"
)

// Profile is the application-level user record. Its ID equals the ID of the
// paired account at the identity provider; that shared ID is the join key,
// there is no foreign-key constraint enforcing the pairing.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Role          Role      `json:"role"`
	VehicleType   string    `json:"vehicle_type,omitempty"`
	VehicleNumber string    `json:"vehicle_number,omitempty"`
	AadharNumber  string    `json:"aadhar_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewRiderProfile creates a rider Profile keyed by the given identity ID.
// Returns an error if validation fails.
func NewRiderProfile(identityID uuid.UUID, fullName, phone, email string) (*Profile, error) {
	now := time.Now().UTC()
	p := &Profile{
		ID:        identityID,
		FullName:  fullName,
		Phone:     phone,
		Email:     email,
		Role:      RoleRider,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProfileID
	}
	if p.FullName == "" {
		return ErrEmptyFullName
	}
	switch p.Role {
	case RoleRider, RoleAdmin:
	default:
		return ErrInvalidRole
	}
	return nil
}
