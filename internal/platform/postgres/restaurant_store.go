package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/store"
)

// RestaurantStore implements the store.RestaurantStore interface using a
// PostgreSQL database as the storage backend.
type RestaurantStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRestaurantStore creates a new PostgreSQL implementation of the
// RestaurantStore interface. The database handle is initialized and managed
// by the caller. If logger is nil, the default logger is used.
func NewRestaurantStore(db store.DBTX, logger *slog.Logger) *RestaurantStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RestaurantStore{
		db:     db,
		logger: logger.With(slog.String("component", "restaurant_store")),
	}
}

// Ensure RestaurantStore implements store.RestaurantStore.
var _ store.RestaurantStore = (*RestaurantStore)(nil)

// GetByID implements store.RestaurantStore.GetByID.
func (s *RestaurantStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	query := `
		SELECT id, name, email, phone, address, is_active, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`

	var r domain.Restaurant
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.Name, &r.Email, &r.Phone, &r.Address, &r.IsActive,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, store.ErrRestaurantNotFound
		}
		s.logger.Error("failed to get restaurant",
			"restaurant_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return &r, nil
}

// Delete implements store.RestaurantStore.Delete.
func (s *RestaurantStore) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM restaurants WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.NewStoreError("restaurant", "delete", "still referenced by dependent rows", store.ErrDeleteFailed)
		}
		s.logger.Error("failed to delete restaurant",
			"restaurant_id", id,
			"error", err)
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrRestaurantNotFound
	}
	return nil
}

// DeleteMenuItems implements store.RestaurantStore.DeleteMenuItems.
func (s *RestaurantStore) DeleteMenuItems(ctx context.Context, restaurantID uuid.UUID) error {
	return s.deleteOwned(ctx, "menu_items", restaurantID)
}

// DeleteCoupons implements store.RestaurantStore.DeleteCoupons.
func (s *RestaurantStore) DeleteCoupons(ctx context.Context, restaurantID uuid.UUID) error {
	return s.deleteOwned(ctx, "coupons", restaurantID)
}

// DeletePayouts implements store.RestaurantStore.DeletePayouts.
func (s *RestaurantStore) DeletePayouts(ctx context.Context, restaurantID uuid.UUID) error {
	return s.deleteOwned(ctx, "payouts", restaurantID)
}

// deleteOwned removes every row in table belonging to the restaurant.
// Deleting zero rows is fine; a restaurant may have no catalog rows at all.
func (s *RestaurantStore) deleteOwned(ctx context.Context, table string, restaurantID uuid.UUID) error {
	// table is one of a fixed set of identifiers, never user input.
	query := fmt.Sprintf(`DELETE FROM %s WHERE restaurant_id = $1`, table)

	if _, err := s.db.ExecContext(ctx, query, restaurantID); err != nil {
		s.logger.Error("failed to delete restaurant-owned rows",
			"table", table,
			"restaurant_id", restaurantID,
			"error", err)
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}
