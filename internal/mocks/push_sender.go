package mocks

import (
	"context"

	"github.com/feastboard/admin-api/internal/domain"
)

// MockPushSender implements service.PushSender for testing
type MockPushSender struct {
	// SendFn allows test cases to mock the Send behavior
	SendFn func(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error)

	// SentBatches records every notification slice passed to Send
	SentBatches [][]domain.PushNotification

	// Default values used when SendFn isn't defined
	Tickets []domain.PushTicket
	Err     error
}

// Send implements the service.PushSender interface
func (m *MockPushSender) Send(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error) {
	m.SentBatches = append(m.SentBatches, notifications)
	if m.SendFn != nil {
		return m.SendFn(ctx, notifications)
	}
	if m.Tickets == nil && m.Err == nil {
		tickets := make([]domain.PushTicket, len(notifications))
		for i := range tickets {
			tickets[i] = domain.PushTicket{Status: "ok"}
		}
		return tickets, nil
	}
	return m.Tickets, m.Err
}
