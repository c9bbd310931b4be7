package gotrue

import "time"

// adminUserRequest is the request body for the admin user endpoints. Empty
// fields are omitted so partial updates (e.g. password only) stay partial.
type adminUserRequest struct {
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Password     string         `json:"password,omitempty"`
	EmailConfirm bool           `json:"email_confirm,omitempty"`
	PhoneConfirm bool           `json:"phone_confirm,omitempty"`
	UserMeta     map[string]any `json:"user_metadata,omitempty"`
}

// adminUserResponse is the provider's user record as returned by the admin
// endpoints. Only the fields this service reads are declared.
type adminUserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
