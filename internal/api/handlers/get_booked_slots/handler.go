package get_booked_slots

import (
	"net/http"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Returns every occupied slot without exposing whether a booking or an owner
// block holds it.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetTakenSlots(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to fetch taken slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
