package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/api/shared"
	"github.com/feastboard/admin-api/internal/service"
)

// RiderHandler handles rider administration API requests.
type RiderHandler struct {
	riderService service.RiderService
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewRiderHandler creates a new RiderHandler with the given dependencies.
func NewRiderHandler(riderService service.RiderService, logger *slog.Logger) *RiderHandler {
	return &RiderHandler{
		riderService: riderService,
		validator:    validator.New(),
		logger:       logger.With("component", "rider_handler"),
	}
}

// Create handles the /riders/create endpoint. Contact details and the
// password are generated; the plaintext password appears in this response
// and nowhere else.
func (h *RiderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRiderRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	rider, err := h.riderService.ProvisionRider(r.Context(), service.ProvisionRiderParams{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create rider")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreateRiderResponse{
		Success: true,
		Rider: RiderCredentials{
			ID:       rider.Profile.ID,
			RiderID:  rider.RiderID,
			Email:    rider.Profile.Email,
			Password: rider.Password,
			FullName: rider.Profile.FullName,
			Phone:    rider.Profile.Phone,
		},
	})
}

// Register handles the /riders endpoint, the alternate creation path that
// accepts the full profile up front and responds with the stored profile.
func (h *RiderHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRiderRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	rider, err := h.riderService.ProvisionRider(r.Context(), service.ProvisionRiderParams{
		FullName:      req.FullName,
		Phone:         req.Phone,
		Email:         req.Email,
		VehicleType:   req.VehicleType,
		VehicleNumber: req.VehicleNumber,
		AadharNumber:  req.AadharNumber,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create rider")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterRiderResponse{
		Data: rider.Profile,
	})
}

// Delete handles the /riders/delete endpoint.
func (h *RiderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRiderRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	riderID, err := uuid.Parse(req.UserID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid userId")
		return
	}

	warnings, err := h.riderService.DeleteRider(r.Context(), riderID)
	if err != nil {
		// Same contract as restaurant deletion: the fatal step's message
		// goes back to the operator as-is.
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Success:  true,
		Warnings: warnings,
	})
}

// ResetPassword handles the /riders/reset-password endpoint.
func (h *RiderHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetRiderPasswordRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	riderID, err := uuid.Parse(req.UserID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid userId")
		return
	}

	if err := h.riderService.ResetPassword(r.Context(), riderID, req.NewPassword); err != nil {
		HandleAPIError(w, r, err, "Failed to reset password")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}
