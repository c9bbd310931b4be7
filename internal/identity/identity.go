package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Account is an authentication-provider account record as this service sees
// it. The provider owns the canonical copy; this struct carries only the
// fields the dashboard flows read back.
type Account struct {
	ID        uuid.UUID
	Email     string
	Phone     string
	CreatedAt time.Time
}

// CreateAccountParams describes a new account at the identity provider.
// Exactly one of Email or Phone must be set as the primary contact method.
type CreateAccountParams struct {
	Email    string
	Phone    string
	Password string

	// Confirmed marks the contact method as already verified, skipping the
	// provider's confirmation flow. Dashboard-created accounts are always
	// pre-confirmed.
	Confirmed bool

	// Metadata is attached to the provider record (e.g. full_name, role).
	Metadata map[string]any
}

// Provider is the admin surface of the external identity service: create an
// account, delete an account, update its credentials. Implementations make
// remote calls; none of them retry.
type Provider interface {
	// CreateAccount creates a new account and returns the provider's record.
	// Returns ErrAccountExists if the contact method is already registered.
	CreateAccount(ctx context.Context, params CreateAccountParams) (*Account, error)

	// DeleteAccount permanently removes the account with the given ID.
	// Returns ErrAccountNotFound if no such account exists.
	DeleteAccount(ctx context.Context, id uuid.UUID) error

	// UpdatePassword replaces the password of the account with the given ID.
	// Returns ErrAccountNotFound if no such account exists.
	UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error
}
