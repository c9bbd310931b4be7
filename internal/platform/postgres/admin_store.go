package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/store"
)

// AdminStore implements the store.AdminStore interface using a PostgreSQL
// database as the storage backend.
type AdminStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAdminStore creates a new PostgreSQL implementation of the AdminStore
// interface. If logger is nil, the default logger is used.
func NewAdminStore(db store.DBTX, logger *slog.Logger) *AdminStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminStore{
		db:     db,
		logger: logger.With(slog.String("component", "admin_store")),
	}
}

// Ensure AdminStore implements store.AdminStore.
var _ store.AdminStore = (*AdminStore)(nil)

// Create implements store.AdminStore.Create.
func (s *AdminStore) Create(ctx context.Context, admin *domain.Admin) error {
	if err := admin.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO admins (id, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		admin.ID, admin.Email, admin.HashedPassword, admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAdminEmailExists
		}
		s.logger.Error("failed to create admin",
			"admin_id", admin.ID,
			"error", err)
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// GetByID implements store.AdminStore.GetByID.
func (s *AdminStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	query := `
		SELECT id, email, hashed_password, created_at, updated_at
		FROM admins
		WHERE id = $1
	`
	return s.getOne(ctx, query, id)
}

// GetByEmail implements store.AdminStore.GetByEmail.
func (s *AdminStore) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `
		SELECT id, email, hashed_password, created_at, updated_at
		FROM admins
		WHERE email = $1
	`
	return s.getOne(ctx, query, email)
}

// getOne runs a single-row admin query and maps no-rows to ErrAdminNotFound.
func (s *AdminStore) getOne(ctx context.Context, query string, arg any) (*domain.Admin, error) {
	var a domain.Admin
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.Email, &a.HashedPassword, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, store.ErrAdminNotFound
		}
		s.logger.Error("failed to get admin", "error", err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &a, nil
}
