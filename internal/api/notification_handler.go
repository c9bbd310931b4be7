package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/feastboard/admin-api/internal/api/shared"
	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/service"
)

// NotificationHandler handles push notification API requests.
type NotificationHandler struct {
	notificationService service.NotificationService
	logger              *slog.Logger
}

// NewNotificationHandler creates a new NotificationHandler with the given dependencies.
func NewNotificationHandler(notificationService service.NotificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger.With("component", "notification_handler"),
	}
}

// Send handles the /send-notification endpoint. Per-notification validation
// happens in the service so the batch is rejected as a whole; the tickets in
// the response line up with the notifications in the request.
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendNotificationRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	tickets, err := h.notificationService.SendNotifications(r.Context(), req.Notifications)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to send notifications", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SendNotificationResponse{
		Success: true,
		Results: tickets,
		Count:   len(tickets),
	})
}
