package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/feastboard/admin-api/internal/domain"
)

// PushSender forwards validated notifications to the push provider.
type PushSender interface {
	Send(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error)
}

// NotificationService validates and forwards push notifications.
type NotificationService interface {
	// SendNotifications validates every notification and forwards the batch
	// to the push provider, returning the provider tickets in input order.
	SendNotifications(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error)
}

// NotificationServiceImpl implements the NotificationService interface.
type NotificationServiceImpl struct {
	sender PushSender
	logger *slog.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(sender PushSender, logger *slog.Logger) NotificationService {
	return &NotificationServiceImpl{
		sender: sender,
		logger: logger.With("component", "notification_service"),
	}
}

// SendNotifications rejects the whole batch if any notification is
// unaddressable; partial validation would make the returned tickets
// impossible to match back to the input.
func (s *NotificationServiceImpl) SendNotifications(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error) {
	if len(notifications) == 0 {
		return nil, domain.NewValidationError("notifications", "at least one notification is required", domain.ErrValidation)
	}

	for i := range notifications {
		if err := notifications[i].Validate(); err != nil {
			return nil, domain.NewValidationError(
				fmt.Sprintf("notifications[%d]", i), err.Error(), domain.ErrValidation)
		}
	}

	tickets, err := s.sender.Send(ctx, notifications)
	if err != nil {
		s.logger.Error("failed to forward notifications",
			"count", len(notifications),
			"delivered_tickets", len(tickets),
			"error", err)
		return tickets, fmt.Errorf("failed to send notifications: %w", err)
	}

	return tickets, nil
}
