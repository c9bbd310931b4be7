package mocks

import (
	"context"

	"github.com/google/uuid"
)

// MockOrderStore implements store.OrderStore for testing
type MockOrderStore struct {
	// Function fields for customizable behavior
	ListIDsByRestaurantFn         func(ctx context.Context, restaurantID uuid.UUID) ([]uuid.UUID, error)
	DeleteByRestaurantFn          func(ctx context.Context, restaurantID uuid.UUID) error
	DeleteItemsByOrderIDsFn       func(ctx context.Context, orderIDs []uuid.UUID) error
	DeleteAssignmentsByOrderIDsFn func(ctx context.Context, orderIDs []uuid.UUID) error
	DeleteDeliveriesByOrderIDsFn  func(ctx context.Context, orderIDs []uuid.UUID) error
	DeleteRatingsByOrderIDsFn     func(ctx context.Context, orderIDs []uuid.UUID) error

	// OrderIDs is the default ListIDsByRestaurant result
	OrderIDs []uuid.UUID

	// BatchArgs records the order ID slice passed to each batched delete,
	// keyed by the same names the Log uses
	BatchArgs map[string][]uuid.UUID

	// Log, when set, records each call for ordering assertions
	Log *CallLog
}

// NewMockOrderStore creates a new mock store with initialized defaults
func NewMockOrderStore() *MockOrderStore {
	return &MockOrderStore{
		BatchArgs: make(map[string][]uuid.UUID),
	}
}

// ListIDsByRestaurant implements the OrderStore interface
func (m *MockOrderStore) ListIDsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]uuid.UUID, error) {
	m.Log.Record("orders.list")
	if m.ListIDsByRestaurantFn != nil {
		return m.ListIDsByRestaurantFn(ctx, restaurantID)
	}
	return m.OrderIDs, nil
}

// DeleteByRestaurant implements the OrderStore interface
func (m *MockOrderStore) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	m.Log.Record("orders.delete")
	if m.DeleteByRestaurantFn != nil {
		return m.DeleteByRestaurantFn(ctx, restaurantID)
	}
	return nil
}

// DeleteItemsByOrderIDs implements the OrderStore interface
func (m *MockOrderStore) DeleteItemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error {
	m.Log.Record("order_items.delete")
	m.BatchArgs["order_items.delete"] = orderIDs
	if m.DeleteItemsByOrderIDsFn != nil {
		return m.DeleteItemsByOrderIDsFn(ctx, orderIDs)
	}
	return nil
}

// DeleteAssignmentsByOrderIDs implements the OrderStore interface
func (m *MockOrderStore) DeleteAssignmentsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error {
	m.Log.Record("order_assignments.delete")
	m.BatchArgs["order_assignments.delete"] = orderIDs
	if m.DeleteAssignmentsByOrderIDsFn != nil {
		return m.DeleteAssignmentsByOrderIDsFn(ctx, orderIDs)
	}
	return nil
}

// DeleteDeliveriesByOrderIDs implements the OrderStore interface
func (m *MockOrderStore) DeleteDeliveriesByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error {
	m.Log.Record("deliveries.delete")
	m.BatchArgs["deliveries.delete"] = orderIDs
	if m.DeleteDeliveriesByOrderIDsFn != nil {
		return m.DeleteDeliveriesByOrderIDsFn(ctx, orderIDs)
	}
	return nil
}

// DeleteRatingsByOrderIDs implements the OrderStore interface
func (m *MockOrderStore) DeleteRatingsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error {
	m.Log.Record("ratings.delete")
	m.BatchArgs["ratings.delete"] = orderIDs
	if m.DeleteRatingsByOrderIDsFn != nil {
		return m.DeleteRatingsByOrderIDsFn(ctx, orderIDs)
	}
	return nil
}
