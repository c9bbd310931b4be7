package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
)

// RestaurantStore defines the interface for restaurant data persistence,
// covering the restaurants table and the restaurant-owned catalog tables
// (menu_items, coupons, payouts).
type RestaurantStore interface {
	// GetByID retrieves a restaurant by its unique ID.
	// Returns ErrRestaurantNotFound if the restaurant does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)

	// Delete removes the restaurant record itself.
	// Returns ErrRestaurantNotFound if the restaurant does not exist.
	// Callers are responsible for removing dependent records first; the
	// schema does not cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteMenuItems removes all menu items belonging to the restaurant.
	DeleteMenuItems(ctx context.Context, restaurantID uuid.UUID) error

	// DeleteCoupons removes all coupons belonging to the restaurant.
	DeleteCoupons(ctx context.Context, restaurantID uuid.UUID) error

	// DeletePayouts removes all payout records belonging to the restaurant.
	DeletePayouts(ctx context.Context, restaurantID uuid.UUID) error
}
