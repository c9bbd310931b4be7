package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/store"
)

// MockAdminStore implements store.AdminStore for testing
type MockAdminStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, admin *domain.Admin) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Admin, error)

	// Data for default implementation, keyed by email
	Admins map[string]*domain.Admin
}

// NewMockAdminStore creates a new mock store with initialized defaults
func NewMockAdminStore() *MockAdminStore {
	return &MockAdminStore{
		Admins: make(map[string]*domain.Admin),
	}
}

// Create implements the AdminStore interface
func (m *MockAdminStore) Create(ctx context.Context, admin *domain.Admin) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, admin)
	}
	if _, exists := m.Admins[admin.Email]; exists {
		return store.ErrAdminEmailExists
	}
	m.Admins[admin.Email] = admin
	return nil
}

// GetByID implements the AdminStore interface
func (m *MockAdminStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	for _, admin := range m.Admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, store.ErrAdminNotFound
}

// GetByEmail implements the AdminStore interface
func (m *MockAdminStore) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	admin, exists := m.Admins[email]
	if !exists {
		return nil, store.ErrAdminNotFound
	}
	return admin, nil
}
