package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Admin-specific validation errors.
var (
	ErrEmptyAdminID        = errors.New("admin ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Admin represents a dashboard operator account. Admins authenticate locally
// (bcrypt hash stored in the admins table) rather than through the identity
// provider, so the dashboard stays usable even when the provider is down.
type Admin struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate checks if the Admin has valid data.
func (a *Admin) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAdminID
	}
	if a.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(a.Email) {
		return ErrInvalidEmail
	}
	if a.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// validEmailFormat performs basic structural validation of an email address:
// a non-empty local part, an @, and a domain containing an interior dot.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
