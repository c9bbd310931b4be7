package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/store"
)

// OrderStore implements the store.OrderStore interface using a PostgreSQL
// database as the storage backend.
type OrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewOrderStore creates a new PostgreSQL implementation of the OrderStore
// interface. If logger is nil, the default logger is used.
func NewOrderStore(db store.DBTX, logger *slog.Logger) *OrderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderStore{
		db:     db,
		logger: logger.With(slog.String("component", "order_store")),
	}
}

// Ensure OrderStore implements store.OrderStore.
var _ store.OrderStore = (*OrderStore)(nil)

// ListIDsByRestaurant implements store.OrderStore.ListIDsByRestaurant.
func (s *OrderStore) ListIDsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT id FROM orders WHERE restaurant_id = $1`

	rows, err := s.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		s.logger.Error("failed to list order IDs",
			"restaurant_id", restaurantID,
			"error", err)
		return nil, fmt.Errorf("failed to list order IDs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan order ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order IDs: %w", err)
	}
	return ids, nil
}

// DeleteByRestaurant implements store.OrderStore.DeleteByRestaurant.
func (s *OrderStore) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	query := `DELETE FROM orders WHERE restaurant_id = $1`

	if _, err := s.db.ExecContext(ctx, query, restaurantID); err != nil {
		if isForeignKeyViolation(err) {
			return store.NewStoreError("orders", "delete", "dependent rows still reference these orders", store.ErrDeleteFailed)
		}
		s.logger.Error("failed to delete orders",
			"restaurant_id", restaurantID,
			"error", err)
		return fmt.Errorf("failed to delete orders: %w", err)
	}
	return nil
}

// DeleteItemsByOrderIDs implements store.OrderStore.DeleteItemsByOrderIDs.
func (s *OrderStore) DeleteItemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error {
	return s.deleteByOrderIDs(ctx, "order_items", orderIDs)
}

// DeleteAssignmentsByOrderIDs implements store.OrderStore.DeleteAssignmentsByOrderIDs.
func (s *OrderStore) DeleteAssignmentsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error {
	return s.deleteByOrderIDs(ctx, "order_assignments", orderIDs)
}

// DeleteDeliveriesByOrderIDs implements store.OrderStore.DeleteDeliveriesByOrderIDs.
func (s *OrderStore) DeleteDeliveriesByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error {
	return s.deleteByOrderIDs(ctx, "deliveries", orderIDs)
}

// DeleteRatingsByOrderIDs implements store.OrderStore.DeleteRatingsByOrderIDs.
func (s *OrderStore) DeleteRatingsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error {
	return s.deleteByOrderIDs(ctx, "ratings", orderIDs)
}

// deleteByOrderIDs removes every row in table referencing any of the given
// orders with a single batched statement.
func (s *OrderStore) deleteByOrderIDs(ctx context.Context, table string, orderIDs []uuid.UUID) error {
	if len(orderIDs) == 0 {
		return nil
	}

	// table is one of a fixed set of identifiers, never user input.
	query := fmt.Sprintf(`DELETE FROM %s WHERE order_id = ANY($1::uuid[])`, table)

	if _, err := s.db.ExecContext(ctx, query, uuidStrings(orderIDs)); err != nil {
		s.logger.Error("failed to delete order-dependent rows",
			"table", table,
			"order_count", len(orderIDs),
			"error", err)
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}

// uuidStrings converts UUIDs to their string form for array binding.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
