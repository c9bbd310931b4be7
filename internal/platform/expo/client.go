package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/feastboard/admin-api/internal/config"
	"github.com/feastboard/admin-api/internal/domain"
)

// defaultTimeout bounds each batch request to the push provider.
const defaultTimeout = 15 * time.Second

// ErrPushUnavailable is returned when the push provider cannot be reached or
// answers with a server error.
var ErrPushUnavailable = errors.New("push provider unavailable")

// Client forwards push notifications to an Expo-compatible push endpoint.
// Sends larger than the configured batch size are chunked; the provider
// rejects batches above 100 messages.
type Client struct {
	logger     *slog.Logger
	endpoint   string
	batchSize  int
	httpClient *http.Client
}

// NewClient creates a Client from the push configuration.
func NewClient(logger *slog.Logger, cfg config.PushConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.EndpointURL == "" {
		return nil, errors.New("push endpoint URL cannot be empty")
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 || batchSize > 100 {
		batchSize = 100
	}

	return &Client{
		logger:     logger.With(slog.String("component", "push_client")),
		endpoint:   cfg.EndpointURL,
		batchSize:  batchSize,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Send forwards the notifications in order, one request per batch, and
// returns the provider tickets in the same order as the input. The first
// failing batch aborts the send; tickets for already-delivered batches are
// returned alongside the error.
func (c *Client) Send(ctx context.Context, notifications []domain.PushNotification) ([]domain.PushTicket, error) {
	tickets := make([]domain.PushTicket, 0, len(notifications))

	for start := 0; start < len(notifications); start += c.batchSize {
		end := start + c.batchSize
		if end > len(notifications) {
			end = len(notifications)
		}

		batchTickets, err := c.sendBatch(ctx, notifications[start:end])
		if err != nil {
			return tickets, fmt.Errorf("batch starting at %d: %w", start, err)
		}
		tickets = append(tickets, batchTickets...)
	}

	c.logger.Info("push notifications forwarded",
		"count", len(notifications),
		"batches", (len(notifications)+c.batchSize-1)/c.batchSize)

	return tickets, nil
}

// sendBatch performs a single request against the push endpoint.
func (c *Client) sendBatch(ctx context.Context, batch []domain.PushNotification) ([]domain.PushTicket, error) {
	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPushUnavailable, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: status %d", ErrPushUnavailable, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("push provider rejected batch: status %d", resp.StatusCode)
	}

	var body struct {
		Data []domain.PushTicket `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	return body.Data, nil
}
