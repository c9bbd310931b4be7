package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/config"
	"github.com/feastboard/admin-api/internal/identity"
)

// defaultTimeout bounds every admin API call. The provider enforces its own
// limits too; this one just keeps a wedged connection from pinning a request.
const defaultTimeout = 15 * time.Second

// Client implements the identity.Provider interface against a GoTrue-style
// auth server's admin REST endpoints (/admin/users). All calls authenticate
// with the service-role key.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewClient creates a Client from the identity configuration.
func NewClient(logger *slog.Logger, cfg config.IdentityConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", identity.ErrInvalidConfig)
	}
	if cfg.ServiceKey == "" {
		return nil, fmt.Errorf("%w: service key cannot be empty", identity.ErrInvalidConfig)
	}

	return &Client{
		logger:     logger.With(slog.String("component", "identity_client")),
		baseURL:    cfg.BaseURL,
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Ensure Client implements identity.Provider.
var _ identity.Provider = (*Client)(nil)

// CreateAccount implements identity.Provider.CreateAccount.
func (c *Client) CreateAccount(ctx context.Context, params identity.CreateAccountParams) (*identity.Account, error) {
	body := adminUserRequest{
		Email:    params.Email,
		Phone:    params.Phone,
		Password: params.Password,
		UserMeta: params.Metadata,
	}
	if params.Confirmed {
		if params.Email != "" {
			body.EmailConfirm = true
		}
		if params.Phone != "" {
			body.PhoneConfirm = true
		}
	}

	var created adminUserResponse
	if err := c.do(ctx, http.MethodPost, "/admin/users", body, &created); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(created.ID)
	if err != nil {
		return nil, fmt.Errorf("provider returned malformed account ID %q: %w", created.ID, err)
	}

	c.logger.Info("identity account created",
		"account_id", id,
		"confirmed", params.Confirmed)

	return &identity.Account{
		ID:        id,
		Email:     created.Email,
		Phone:     created.Phone,
		CreatedAt: created.CreatedAt,
	}, nil
}

// DeleteAccount implements identity.Provider.DeleteAccount.
func (c *Client) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := c.do(ctx, http.MethodDelete, "/admin/users/"+id.String(), nil, nil); err != nil {
		return err
	}
	c.logger.Info("identity account deleted", "account_id", id)
	return nil
}

// UpdatePassword implements identity.Provider.UpdatePassword.
func (c *Client) UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	body := adminUserRequest{Password: newPassword}
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+id.String(), body, nil); err != nil {
		return err
	}
	c.logger.Info("identity password updated", "account_id", id)
	return nil
}

// do performs one admin API request and decodes the response into out when
// out is non-nil. Provider error statuses are mapped to identity sentinels.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", identity.ErrProviderUnavailable, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode >= 400 {
		return c.mapErrorResponse(resp, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode provider response: %w", err)
		}
	}
	return nil
}

// mapErrorResponse converts a non-2xx provider response into a sentinel error,
// keeping the provider's message for the caller.
func (c *Client) mapErrorResponse(resp *http.Response, method, path string) error {
	var provider struct {
		Message string `json:"msg"`
		Error   string `json:"error_description"`
	}
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&provider); err == nil {
		if provider.Message != "" {
			message = provider.Message
		} else if provider.Error != "" {
			message = provider.Error
		}
	}

	c.logger.Warn("identity provider returned error",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"message", message)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", identity.ErrAccountNotFound, message)
	case resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", identity.ErrAccountExists, message)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", identity.ErrProviderUnavailable, message)
	default:
		return fmt.Errorf("identity provider request failed (%d): %s", resp.StatusCode, message)
	}
}
