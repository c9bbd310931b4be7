package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
)

// AdminStore defines the interface for dashboard operator persistence.
type AdminStore interface {
	// Create saves a new admin to the store.
	// Returns ErrAdminEmailExists if the email is already taken.
	Create(ctx context.Context, admin *domain.Admin) error

	// GetByID retrieves an admin by their unique ID.
	// Returns ErrAdminNotFound if the admin does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)

	// GetByEmail retrieves an admin by their email address.
	// Returns ErrAdminNotFound if the admin does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
