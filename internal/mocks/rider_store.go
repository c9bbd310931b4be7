package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/store"
)

// MockRiderStore implements store.RiderStore for testing
type MockRiderStore struct {
	// Function fields for customizable behavior
	CreateProfileFn            func(ctx context.Context, profile *domain.Profile) error
	GetProfileFn               func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	DeleteProfileFn            func(ctx context.Context, riderID uuid.UUID) error
	SeedLiveStatusFn           func(ctx context.Context, riderID uuid.UUID) error
	DeleteLiveStatusFn         func(ctx context.Context, riderID uuid.UUID) error
	DeleteAssignmentsByRiderFn func(ctx context.Context, riderID uuid.UUID) error
	ClearDeliveryRiderFn       func(ctx context.Context, riderID uuid.UUID) error

	// Data for default implementation
	Profiles map[uuid.UUID]*domain.Profile

	// LiveStatusSeeded tracks riders whose initial live-status row was written
	LiveStatusSeeded map[uuid.UUID]bool

	// ClearedDeliveryRiders tracks riders whose delivery references were cleared
	ClearedDeliveryRiders map[uuid.UUID]bool

	// Log, when set, records each call for ordering assertions
	Log *CallLog
}

// NewMockRiderStore creates a new mock store with initialized defaults
func NewMockRiderStore() *MockRiderStore {
	return &MockRiderStore{
		Profiles:              make(map[uuid.UUID]*domain.Profile),
		LiveStatusSeeded:      make(map[uuid.UUID]bool),
		ClearedDeliveryRiders: make(map[uuid.UUID]bool),
	}
}

// CreateProfile implements the RiderStore interface
func (m *MockRiderStore) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	m.Log.Record("profiles.create")
	if m.CreateProfileFn != nil {
		return m.CreateProfileFn(ctx, profile)
	}
	if _, exists := m.Profiles[profile.ID]; exists {
		return store.ErrProfileExists
	}
	m.Profiles[profile.ID] = profile
	return nil
}

// GetProfile implements the RiderStore interface
func (m *MockRiderStore) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	m.Log.Record("profiles.get")
	if m.GetProfileFn != nil {
		return m.GetProfileFn(ctx, id)
	}
	p, ok := m.Profiles[id]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return p, nil
}

// DeleteProfile implements the RiderStore interface
func (m *MockRiderStore) DeleteProfile(ctx context.Context, riderID uuid.UUID) error {
	m.Log.Record("profiles.delete")
	if m.DeleteProfileFn != nil {
		return m.DeleteProfileFn(ctx, riderID)
	}
	delete(m.Profiles, riderID)
	return nil
}

// SeedLiveStatus implements the RiderStore interface
func (m *MockRiderStore) SeedLiveStatus(ctx context.Context, riderID uuid.UUID) error {
	m.Log.Record("rider_live_status.seed")
	if m.SeedLiveStatusFn != nil {
		return m.SeedLiveStatusFn(ctx, riderID)
	}
	m.LiveStatusSeeded[riderID] = true
	return nil
}

// DeleteLiveStatus implements the RiderStore interface
func (m *MockRiderStore) DeleteLiveStatus(ctx context.Context, riderID uuid.UUID) error {
	m.Log.Record("rider_live_status.delete")
	if m.DeleteLiveStatusFn != nil {
		return m.DeleteLiveStatusFn(ctx, riderID)
	}
	delete(m.LiveStatusSeeded, riderID)
	return nil
}

// DeleteAssignmentsByRider implements the RiderStore interface
func (m *MockRiderStore) DeleteAssignmentsByRider(ctx context.Context, riderID uuid.UUID) error {
	m.Log.Record("order_assignments.delete_by_rider")
	if m.DeleteAssignmentsByRiderFn != nil {
		return m.DeleteAssignmentsByRiderFn(ctx, riderID)
	}
	return nil
}

// ClearDeliveryRider implements the RiderStore interface
func (m *MockRiderStore) ClearDeliveryRider(ctx context.Context, riderID uuid.UUID) error {
	m.Log.Record("deliveries.clear_rider")
	if m.ClearDeliveryRiderFn != nil {
		return m.ClearDeliveryRiderFn(ctx, riderID)
	}
	m.ClearedDeliveryRiders[riderID] = true
	return nil
}

// WithTx implements the RiderStore interface. The mock has no real
// transaction, so it returns itself.
func (m *MockRiderStore) WithTx(tx *sql.Tx) store.RiderStore {
	return m
}
