package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/identity"
	"github.com/feastboard/admin-api/internal/store"
)

// RestaurantService provides restaurant administration operations.
type RestaurantService interface {
	// DeleteRestaurant removes the restaurant and every record that would
	// otherwise be orphaned, leaf tables first. It returns the warnings
	// collected from failed best-effort steps; a non-nil error means a fatal
	// step failed and the sequence was aborted.
	DeleteRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]string, error)

	// UpdatePassword replaces the password of the restaurant owner's
	// identity account. Returns store.ErrRestaurantNotFound if no such
	// restaurant exists.
	UpdatePassword(ctx context.Context, restaurantID uuid.UUID, newPassword string) error
}

// RestaurantServiceImpl implements the RestaurantService interface.
type RestaurantServiceImpl struct {
	restaurantStore store.RestaurantStore
	orderStore      store.OrderStore
	provider        identity.Provider
	logger          *slog.Logger
}

// NewRestaurantService creates a new RestaurantService.
func NewRestaurantService(
	restaurantStore store.RestaurantStore,
	orderStore store.OrderStore,
	provider identity.Provider,
	logger *slog.Logger,
) RestaurantService {
	return &RestaurantServiceImpl{
		restaurantStore: restaurantStore,
		orderStore:      orderStore,
		provider:        provider,
		logger:          logger.With("component", "restaurant_service"),
	}
}

// DeleteRestaurant deletes the restaurant and its dependents in dependency
// order: order-dependent tables, then orders, then restaurant-owned catalog
// tables, then the restaurant row itself.
//
// The four order-dependent deletes and the catalog deletes are best-effort.
// The orders delete and the restaurant delete are fatal: deleting the
// restaurant while its orders still exist would leave them pointing at a
// missing parent.
func (s *RestaurantServiceImpl) DeleteRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]string, error) {
	orderIDs, err := s.orderStore.ListIDsByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("failed to list orders for restaurant deletion",
			"restaurant_id", restaurantID,
			"error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var steps []step

	// A restaurant with no orders skips the order-dependent deletes entirely.
	if len(orderIDs) > 0 {
		steps = append(steps,
			step{name: "order_items", run: func(ctx context.Context) error {
				return s.orderStore.DeleteItemsByOrderIDs(ctx, orderIDs)
			}},
			step{name: "order_assignments", run: func(ctx context.Context) error {
				return s.orderStore.DeleteAssignmentsByOrderIDs(ctx, orderIDs)
			}},
			step{name: "deliveries", run: func(ctx context.Context) error {
				return s.orderStore.DeleteDeliveriesByOrderIDs(ctx, orderIDs)
			}},
			step{name: "ratings", run: func(ctx context.Context) error {
				return s.orderStore.DeleteRatingsByOrderIDs(ctx, orderIDs)
			}},
		)
	}

	steps = append(steps,
		step{name: "orders", fatal: true, run: func(ctx context.Context) error {
			return s.orderStore.DeleteByRestaurant(ctx, restaurantID)
		}},
		step{name: "menu_items", run: func(ctx context.Context) error {
			return s.restaurantStore.DeleteMenuItems(ctx, restaurantID)
		}},
		step{name: "coupons", run: func(ctx context.Context) error {
			return s.restaurantStore.DeleteCoupons(ctx, restaurantID)
		}},
		step{name: "payouts", run: func(ctx context.Context) error {
			return s.restaurantStore.DeletePayouts(ctx, restaurantID)
		}},
		step{name: "restaurant", fatal: true, run: func(ctx context.Context) error {
			err := s.restaurantStore.Delete(ctx, restaurantID)
			// A concurrent delete may have removed the row already; finding
			// nothing to delete still leaves the store in the desired state.
			if errors.Is(err, store.ErrRestaurantNotFound) {
				return nil
			}
			return err
		}},
	)

	warnings, err := runSteps(ctx, s.logger, steps)
	if err != nil {
		return warnings, err
	}

	s.logger.Info("restaurant deleted",
		"restaurant_id", restaurantID,
		"order_count", len(orderIDs),
		"warnings", len(warnings))
	return warnings, nil
}

// UpdatePassword looks up the restaurant and updates the owner identity's
// password at the provider.
func (s *RestaurantServiceImpl) UpdatePassword(ctx context.Context, restaurantID uuid.UUID, newPassword string) error {
	if _, err := s.restaurantStore.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, store.ErrRestaurantNotFound) {
			s.logger.Debug("password update for unknown restaurant",
				"restaurant_id", restaurantID)
		} else {
			s.logger.Error("failed to look up restaurant for password update",
				"restaurant_id", restaurantID,
				"error", err)
		}
		return err
	}

	if err := s.provider.UpdatePassword(ctx, restaurantID, newPassword); err != nil {
		s.logger.Error("failed to update restaurant owner password",
			"restaurant_id", restaurantID,
			"error", err)
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("restaurant owner password updated",
		"restaurant_id", restaurantID)
	return nil
}
