package store

import (
	"context"

	"github.com/google/uuid"
)

// OrderStore defines the interface for order data persistence, covering the
// orders table and the order-dependent tables (order_items, order_assignments,
// deliveries, ratings). The delete methods are batched: one call covers every
// given order ID, so the sequencer issues exactly one statement per table.
type OrderStore interface {
	// ListIDsByRestaurant returns the IDs of all orders belonging to the
	// restaurant. An empty slice is a valid result.
	ListIDsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]uuid.UUID, error)

	// DeleteByRestaurant removes all orders belonging to the restaurant.
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error

	// DeleteItemsByOrderIDs removes all order_items referencing the given orders.
	DeleteItemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error

	// DeleteAssignmentsByOrderIDs removes all order_assignments referencing
	// the given orders.
	DeleteAssignmentsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error

	// DeleteDeliveriesByOrderIDs removes all deliveries referencing the given
	// orders.
	DeleteDeliveriesByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error

	// DeleteRatingsByOrderIDs removes all ratings referencing the given orders.
	DeleteRatingsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error
}
