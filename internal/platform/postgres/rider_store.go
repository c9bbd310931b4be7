package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/store"
)

// RiderStore implements the store.RiderStore interface using a PostgreSQL
// database as the storage backend.
type RiderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRiderStore creates a new PostgreSQL implementation of the RiderStore
// interface. If logger is nil, the default logger is used.
func NewRiderStore(db store.DBTX, logger *slog.Logger) *RiderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RiderStore{
		db:     db,
		logger: logger.With(slog.String("component", "rider_store")),
	}
}

// Ensure RiderStore implements store.RiderStore.
var _ store.RiderStore = (*RiderStore)(nil)

// WithTx implements store.RiderStore.WithTx.
func (s *RiderStore) WithTx(tx *sql.Tx) store.RiderStore {
	return &RiderStore{
		db:     tx,
		logger: s.logger,
	}
}

// CreateProfile implements store.RiderStore.CreateProfile.
func (s *RiderStore) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO profiles (id, full_name, phone, email, role, vehicle_type, vehicle_number, aadhar_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.ExecContext(ctx, query,
		profile.ID,
		profile.FullName,
		profile.Phone,
		profile.Email,
		profile.Role,
		profile.VehicleType,
		profile.VehicleNumber,
		profile.AadharNumber,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrProfileExists
		}
		s.logger.Error("failed to create profile",
			"profile_id", profile.ID,
			"error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfile implements store.RiderStore.GetProfile.
func (s *RiderStore) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, full_name, phone, email, role, vehicle_type, vehicle_number, aadhar_number, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p domain.Profile
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.FullName, &p.Phone, &p.Email, &p.Role,
		&p.VehicleType, &p.VehicleNumber, &p.AadharNumber,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, store.ErrProfileNotFound
		}
		s.logger.Error("failed to get profile",
			"profile_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// DeleteProfile implements store.RiderStore.DeleteProfile.
// Zero rows affected is not an error; the provider's cascade may have
// removed the profile already.
func (s *RiderStore) DeleteProfile(ctx context.Context, riderID uuid.UUID) error {
	query := `DELETE FROM profiles WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, riderID); err != nil {
		s.logger.Error("failed to delete profile",
			"profile_id", riderID,
			"error", err)
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// SeedLiveStatus implements store.RiderStore.SeedLiveStatus.
func (s *RiderStore) SeedLiveStatus(ctx context.Context, riderID uuid.UUID) error {
	query := `
		INSERT INTO rider_live_status (rider_id, is_online, updated_at)
		VALUES ($1, FALSE, $2)
	`

	if _, err := s.db.ExecContext(ctx, query, riderID, time.Now().UTC()); err != nil {
		s.logger.Error("failed to seed rider live status",
			"rider_id", riderID,
			"error", err)
		return fmt.Errorf("failed to seed rider live status: %w", err)
	}
	return nil
}

// DeleteLiveStatus implements store.RiderStore.DeleteLiveStatus.
func (s *RiderStore) DeleteLiveStatus(ctx context.Context, riderID uuid.UUID) error {
	query := `DELETE FROM rider_live_status WHERE rider_id = $1`

	if _, err := s.db.ExecContext(ctx, query, riderID); err != nil {
		s.logger.Error("failed to delete rider live status",
			"rider_id", riderID,
			"error", err)
		return fmt.Errorf("failed to delete rider live status: %w", err)
	}
	return nil
}

// DeleteAssignmentsByRider implements store.RiderStore.DeleteAssignmentsByRider.
func (s *RiderStore) DeleteAssignmentsByRider(ctx context.Context, riderID uuid.UUID) error {
	query := `DELETE FROM order_assignments WHERE rider_id = $1`

	if _, err := s.db.ExecContext(ctx, query, riderID); err != nil {
		s.logger.Error("failed to delete rider assignments",
			"rider_id", riderID,
			"error", err)
		return fmt.Errorf("failed to delete rider assignments: %w", err)
	}
	return nil
}

// ClearDeliveryRider implements store.RiderStore.ClearDeliveryRider.
// Delivery rows are kept and only the rider reference is nulled so order
// history survives rider removal.
func (s *RiderStore) ClearDeliveryRider(ctx context.Context, riderID uuid.UUID) error {
	query := `UPDATE deliveries SET rider_id = NULL, updated_at = $2 WHERE rider_id = $1`

	if _, err := s.db.ExecContext(ctx, query, riderID, time.Now().UTC()); err != nil {
		s.logger.Error("failed to clear delivery rider references",
			"rider_id", riderID,
			"error", err)
		return fmt.Errorf("failed to clear delivery rider references: %w", err)
	}
	return nil
}
