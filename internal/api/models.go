package api

import (
	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
)

// Common request/response structures

// DeleteRestaurantRequest defines the payload for the restaurant deletion endpoint.
type DeleteRestaurantRequest struct {
	RestaurantID string `json:"restaurantId" validate:"required,uuid"`
}

// UpdateRestaurantPasswordRequest defines the payload for the restaurant
// owner password update endpoint.
type UpdateRestaurantPasswordRequest struct {
	RestaurantID string `json:"restaurantId" validate:"required,uuid"`
	NewPassword  string `json:"newPassword"  validate:"required,min=8,max=72"`
}

// DeleteResponse defines the successful response for the deletion endpoints.
// Warnings lists best-effort cleanup steps that failed; an empty list means
// every step succeeded.
type DeleteResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// SuccessResponse defines the minimal success envelope.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CreateRiderRequest defines the payload for the primary rider creation
// endpoint. Contact and credential fields are generated when absent.
type CreateRiderRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone"     validate:"omitempty,min=7,max=20"`
}

// RegisterRiderRequest defines the payload for the alternate rider creation
// endpoint, which accepts the full profile up front.
type RegisterRiderRequest struct {
	FullName      string `json:"full_name"      validate:"required,min=1,max=200"`
	Phone         string `json:"phone"          validate:"required,min=7,max=20"`
	Email         string `json:"email"          validate:"omitempty,email"`
	VehicleType   string `json:"vehicle_type"   validate:"omitempty,max=50"`
	VehicleNumber string `json:"vehicle_number" validate:"omitempty,max=50"`
	AadharNumber  string `json:"aadhar_number"  validate:"omitempty,max=20"`
}

// RiderCredentials is the one-time credentials payload for a newly created
// rider. Password is plaintext and never returned again.
type RiderCredentials struct {
	ID       uuid.UUID `json:"id"`
	RiderID  string    `json:"riderId"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone,omitempty"`
}

// CreateRiderResponse defines the successful response for the primary rider
// creation endpoint.
type CreateRiderResponse struct {
	Success bool             `json:"success"`
	Rider   RiderCredentials `json:"rider"`
}

// RegisterRiderResponse defines the successful response for the alternate
// rider creation endpoint.
type RegisterRiderResponse struct {
	Data *domain.Profile `json:"data"`
}

// DeleteRiderRequest defines the payload for the rider deletion endpoint.
type DeleteRiderRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// ResetRiderPasswordRequest defines the payload for the rider password reset endpoint.
type ResetRiderPasswordRequest struct {
	UserID      string `json:"userId"      validate:"required,uuid"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

// SendNotificationRequest defines the payload for the push notification
// endpoint. The batch is validated by the notification service, not by struct
// tags, so empty-batch and per-notification errors share one message format.
type SendNotificationRequest struct {
	Notifications []domain.PushNotification `json:"notifications"`
}

// SendNotificationResponse defines the successful response for the push
// notification endpoint. Results carries the provider tickets in input order.
type SendNotificationResponse struct {
	Success bool                `json:"success"`
	Results []domain.PushTicket `json:"results"`
	Count   int                 `json:"count"`
}

// LoginRequest defines the payload for the admin login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// AdminID is the unique identifier for the authenticated admin
	AdminID uuid.UUID `json:"admin_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}
