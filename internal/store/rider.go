package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
)

// RiderStore defines the interface for rider data persistence, covering the
// profiles, rider_live_status, order_assignments and deliveries tables as
// they relate to a rider account.
type RiderStore interface {
	// CreateProfile saves a new profile to the store.
	// Returns ErrProfileExists if a profile with the same ID already exists.
	// Returns validation errors from the domain Profile if data is invalid.
	CreateProfile(ctx context.Context, profile *domain.Profile) error

	// GetProfile retrieves a profile by its unique ID.
	// Returns ErrProfileNotFound if the profile does not exist.
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// DeleteProfile removes the profile record for the rider. Deleting a
	// profile that does not exist is not an error; cascading constraints at
	// the identity provider may already have removed it.
	DeleteProfile(ctx context.Context, riderID uuid.UUID) error

	// SeedLiveStatus inserts the initial rider_live_status row for a newly
	// provisioned rider.
	SeedLiveStatus(ctx context.Context, riderID uuid.UUID) error

	// DeleteLiveStatus removes the rider_live_status row for the rider.
	DeleteLiveStatus(ctx context.Context, riderID uuid.UUID) error

	// DeleteAssignmentsByRider removes all order_assignments referencing the rider.
	DeleteAssignmentsByRider(ctx context.Context, riderID uuid.UUID) error

	// ClearDeliveryRider nulls the rider reference on every delivery that
	// points at the rider. The delivery rows themselves are kept so order
	// history survives rider removal.
	ClearDeliveryRider(ctx context.Context, riderID uuid.UUID) error

	// WithTx returns a new RiderStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) RiderStore
}
