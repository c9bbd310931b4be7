package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastboard/admin-api/internal/api/shared"
	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/mocks"
	"github.com/feastboard/admin-api/internal/service"
)

// stubNotificationService implements service.NotificationService for handler tests.
type stubNotificationService struct {
	sendFn func(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error)
}

func (s *stubNotificationService) SendNotifications(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error) {
	return s.sendFn(ctx, notifications)
}

func TestNotificationHandlerSend(t *testing.T) {
	t.Parallel()

	t.Run("successful send returns the tickets in order", func(t *testing.T) {
		t.Parallel()

		tickets := []domain.PushTicket{{ID: "t1", Status: "ok"}, {ID: "t2", Status: "ok"}}
		svc := &stubNotificationService{
			sendFn: func(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error) {
				require.Len(t, notifications, 2)
				return tickets, nil
			},
		}
		handler := NewNotificationHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/send-notification", SendNotificationRequest{
			Notifications: []domain.PushNotification{
				{To: "ExponentPushToken[aaa]", Title: "Order update"},
				{To: "ExponentPushToken[bbb]", Body: "On the way"},
			},
		})
		rec := httptest.NewRecorder()
		handler.Send(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp SendNotificationResponse
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, tickets, resp.Results)
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("validation failure from the service returns 400", func(t *testing.T) {
		t.Parallel()

		svc := &stubNotificationService{
			sendFn: func(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error) {
				return nil, domain.NewValidationError("notifications[0]", "notification recipient cannot be empty", domain.ErrValidation)
			},
		}
		handler := NewNotificationHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/send-notification", SendNotificationRequest{
			Notifications: []domain.PushNotification{{Title: "no recipient"}},
		})
		rec := httptest.NewRecorder()
		handler.Send(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Contains(t, resp.Error, "notifications[0]")
	})

	t.Run("empty batch is rejected through the real service", func(t *testing.T) {
		t.Parallel()

		sender := &mocks.MockPushSender{}
		handler := NewNotificationHandler(service.NewNotificationService(sender, testLogger()), testLogger())

		req := newJSONRequest(t, http.MethodPost, "/send-notification",
			SendNotificationRequest{Notifications: []domain.PushNotification{}})
		rec := httptest.NewRecorder()
		handler.Send(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Contains(t, resp.Error, "at least one notification is required")
		assert.Empty(t, sender.SentBatches, "nothing may reach the push gateway")
	})

	t.Run("provider failure returns 500 with a generic message", func(t *testing.T) {
		t.Parallel()

		svc := &stubNotificationService{
			sendFn: func(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error) {
				return nil, errors.New("push gateway timeout")
			},
		}
		handler := NewNotificationHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/send-notification", SendNotificationRequest{
			Notifications: []domain.PushNotification{{To: "ExponentPushToken[aaa]", Title: "x"}},
		})
		rec := httptest.NewRecorder()
		handler.Send(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Failed to send notifications", resp.Error,
			"provider errors must not leak to the caller")
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()

		handler := NewNotificationHandler(&stubNotificationService{}, testLogger())
		req := httptest.NewRequest(http.MethodPost, "/send-notification", nil)
		rec := httptest.NewRecorder()
		handler.Send(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
