package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/identity"
)

// MockIdentityProvider implements identity.Provider for testing
type MockIdentityProvider struct {
	// Function fields for customizable behavior
	CreateAccountFn  func(ctx context.Context, params identity.CreateAccountParams) (*identity.Account, error)
	DeleteAccountFn  func(ctx context.Context, id uuid.UUID) error
	UpdatePasswordFn func(ctx context.Context, id uuid.UUID, newPassword string) error

	// Accounts is the default backing map, keyed by account ID
	Accounts map[uuid.UUID]*identity.Account

	// CreatedWith records the params of every CreateAccount call
	CreatedWith []identity.CreateAccountParams

	// DeletedIDs records every DeleteAccount call
	DeletedIDs []uuid.UUID

	// PasswordUpdates records the new password of every UpdatePassword call,
	// keyed by account ID
	PasswordUpdates map[uuid.UUID]string

	// Log, when set, records each call for ordering assertions
	Log *CallLog
}

// NewMockIdentityProvider creates a new mock provider with initialized defaults
func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{
		Accounts:        make(map[uuid.UUID]*identity.Account),
		PasswordUpdates: make(map[uuid.UUID]string),
	}
}

// CreateAccount implements the identity.Provider interface
func (m *MockIdentityProvider) CreateAccount(ctx context.Context, params identity.CreateAccountParams) (*identity.Account, error) {
	m.Log.Record("identity.create")
	m.CreatedWith = append(m.CreatedWith, params)
	if m.CreateAccountFn != nil {
		return m.CreateAccountFn(ctx, params)
	}
	account := &identity.Account{
		ID:    uuid.New(),
		Email: params.Email,
		Phone: params.Phone,
	}
	m.Accounts[account.ID] = account
	return account, nil
}

// DeleteAccount implements the identity.Provider interface
func (m *MockIdentityProvider) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	m.Log.Record("identity.delete")
	m.DeletedIDs = append(m.DeletedIDs, id)
	if m.DeleteAccountFn != nil {
		return m.DeleteAccountFn(ctx, id)
	}
	if _, ok := m.Accounts[id]; !ok {
		return identity.ErrAccountNotFound
	}
	delete(m.Accounts, id)
	return nil
}

// UpdatePassword implements the identity.Provider interface
func (m *MockIdentityProvider) UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	m.Log.Record("identity.update_password")
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, id, newPassword)
	}
	m.PasswordUpdates[id] = newPassword
	return nil
}
