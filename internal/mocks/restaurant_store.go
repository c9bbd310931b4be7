package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/store"
)

// MockRestaurantStore implements store.RestaurantStore for testing
type MockRestaurantStore struct {
	// Function fields for customizable behavior
	GetByIDFn         func(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	DeleteFn          func(ctx context.Context, id uuid.UUID) error
	DeleteMenuItemsFn func(ctx context.Context, restaurantID uuid.UUID) error
	DeleteCouponsFn   func(ctx context.Context, restaurantID uuid.UUID) error
	DeletePayoutsFn   func(ctx context.Context, restaurantID uuid.UUID) error

	// Data for default implementation
	Restaurants map[uuid.UUID]*domain.Restaurant

	// Log, when set, records each call for ordering assertions
	Log *CallLog
}

// NewMockRestaurantStore creates a new mock store with initialized defaults
func NewMockRestaurantStore() *MockRestaurantStore {
	return &MockRestaurantStore{
		Restaurants: make(map[uuid.UUID]*domain.Restaurant),
	}
}

// GetByID implements the RestaurantStore interface
func (m *MockRestaurantStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	m.Log.Record("restaurants.get")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	r, ok := m.Restaurants[id]
	if !ok {
		return nil, store.ErrRestaurantNotFound
	}
	return r, nil
}

// Delete implements the RestaurantStore interface
func (m *MockRestaurantStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.Log.Record("restaurants.delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Restaurants[id]; !ok {
		return store.ErrRestaurantNotFound
	}
	delete(m.Restaurants, id)
	return nil
}

// DeleteMenuItems implements the RestaurantStore interface
func (m *MockRestaurantStore) DeleteMenuItems(ctx context.Context, restaurantID uuid.UUID) error {
	m.Log.Record("menu_items.delete")
	if m.DeleteMenuItemsFn != nil {
		return m.DeleteMenuItemsFn(ctx, restaurantID)
	}
	return nil
}

// DeleteCoupons implements the RestaurantStore interface
func (m *MockRestaurantStore) DeleteCoupons(ctx context.Context, restaurantID uuid.UUID) error {
	m.Log.Record("coupons.delete")
	if m.DeleteCouponsFn != nil {
		return m.DeleteCouponsFn(ctx, restaurantID)
	}
	return nil
}

// DeletePayouts implements the RestaurantStore interface
func (m *MockRestaurantStore) DeletePayouts(ctx context.Context, restaurantID uuid.UUID) error {
	m.Log.Record("payouts.delete")
	if m.DeletePayoutsFn != nil {
		return m.DeletePayoutsFn(ctx, restaurantID)
	}
	return nil
}
