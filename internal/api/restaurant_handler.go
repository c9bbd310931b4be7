package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/api/shared"
	"github.com/feastboard/admin-api/internal/service"
)

// RestaurantHandler handles restaurant administration API requests.
type RestaurantHandler struct {
	restaurantService service.RestaurantService
	validator         *validator.Validate
	logger            *slog.Logger
}

// NewRestaurantHandler creates a new RestaurantHandler with the given dependencies.
func NewRestaurantHandler(restaurantService service.RestaurantService, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		validator:         validator.New(),
		logger:            logger.With("component", "restaurant_handler"),
	}
}

// Delete handles the /restaurants/delete endpoint.
func (h *RestaurantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRestaurantRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid restaurantId")
		return
	}

	warnings, err := h.restaurantService.DeleteRestaurant(r.Context(), restaurantID)
	if err != nil {
		// Fatal step errors carry the underlying message through to the
		// caller; the dashboard shows it to the operator as-is.
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Success:  true,
		Message:  "Restaurant deleted successfully",
		Warnings: warnings,
	})
}

// UpdatePassword handles the /restaurants/update-password endpoint.
func (h *RestaurantHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req UpdateRestaurantPasswordRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid restaurantId")
		return
	}

	if err := h.restaurantService.UpdatePassword(r.Context(), restaurantID, req.NewPassword); err != nil {
		HandleAPIError(w, r, err, "Failed to update password")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Password updated successfully",
	})
}
