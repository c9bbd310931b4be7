package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/mocks"
)

func TestSendNotifications(t *testing.T) {
	t.Parallel()

	t.Run("forwards a valid batch and returns the tickets", func(t *testing.T) {
		t.Parallel()

		sender := &mocks.MockPushSender{}
		svc := NewNotificationService(sender, testLogger())

		notifications := []domain.PushNotification{
			{To: "ExponentPushToken[aaa]", Title: "Order update", Body: "Your order is on the way"},
			{To: "ExponentPushToken[bbb]", Body: "New coupon available"},
		}

		tickets, err := svc.SendNotifications(context.Background(), notifications)
		require.NoError(t, err)
		require.Len(t, tickets, 2)
		require.Len(t, sender.SentBatches, 1)
		assert.Equal(t, notifications, sender.SentBatches[0])
	})

	t.Run("empty batch fails validation without calling the sender", func(t *testing.T) {
		t.Parallel()

		sender := &mocks.MockPushSender{}
		svc := NewNotificationService(sender, testLogger())

		_, err := svc.SendNotifications(context.Background(), nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, sender.SentBatches)
	})

	t.Run("invalid item rejects the whole batch and names the index", func(t *testing.T) {
		t.Parallel()

		sender := &mocks.MockPushSender{}
		svc := NewNotificationService(sender, testLogger())

		notifications := []domain.PushNotification{
			{To: "ExponentPushToken[aaa]", Title: "ok"},
			{Title: "no recipient"},
		}

		_, err := svc.SendNotifications(context.Background(), notifications)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "notifications[1]")
		assert.Empty(t, sender.SentBatches, "no partial batch may reach the provider")
	})

	t.Run("notification without title or body is rejected", func(t *testing.T) {
		t.Parallel()

		sender := &mocks.MockPushSender{}
		svc := NewNotificationService(sender, testLogger())

		_, err := svc.SendNotifications(context.Background(), []domain.PushNotification{
			{To: "ExponentPushToken[aaa]"},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("provider failure returns partial tickets alongside the error", func(t *testing.T) {
		t.Parallel()

		providerErr := errors.New("push gateway timeout")
		sender := &mocks.MockPushSender{
			Tickets: []domain.PushTicket{{Status: "ok"}},
			Err:     providerErr,
		}
		svc := NewNotificationService(sender, testLogger())

		tickets, err := svc.SendNotifications(context.Background(), []domain.PushNotification{
			{To: "ExponentPushToken[aaa]", Title: "Order update"},
			{To: "ExponentPushToken[bbb]", Title: "Order update"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, providerErr)
		assert.Len(t, tickets, 1, "tickets from chunks sent before the failure are kept")
	})
}
