package identity

import "errors"

// Error definitions for the identity package.
var (
	// ErrInvalidConfig is returned when provider configuration is incomplete.
	ErrInvalidConfig = errors.New("invalid identity provider configuration")

	// ErrAccountExists is returned when the contact method is already
	// registered at the provider.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account matches the given ID.
	ErrAccountNotFound = errors.New("account not found")

	// ErrProviderUnavailable is returned when the provider cannot be reached
	// or answers with a server error.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)
