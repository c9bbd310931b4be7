package domain

import "errors"

// Notification-specific validation errors.
var (
	ErrEmptyRecipient = errors.New("notification recipient cannot be empty")
	ErrEmptyBody      = errors.New("notification must have a title or body")
)

// PushNotification is a single push message addressed to a device token.
// The payload is forwarded to the push provider as-is; this service only
// validates addressing and chunks large sends into provider-sized batches.
type PushNotification struct {
	To    string         `json:"to"`
	Title string         `json:"title,omitempty"`
	Body  string         `json:"body,omitempty"`
	Data  map[string]any `json:"data,omitempty"`
	Sound string         `json:"sound,omitempty"`
}

// Validate checks if the PushNotification is deliverable.
func (n *PushNotification) Validate() error {
	if n.To == "" {
		return ErrEmptyRecipient
	}
	if n.Title == "" && n.Body == "" {
		return ErrEmptyBody
	}
	return nil
}

// PushTicket is the per-notification receipt returned by the push provider.
type PushTicket struct {
	ID      string `json:"id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
