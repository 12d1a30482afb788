package get_scents

import (
	"net/http"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
)

type Handler struct {
	service ScentsService
	logger  Logger
}

func NewHandler(service ScentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/scents
// Public route, only enabled scents are exposed to the booking form.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListEnabled(r.Context())
	if err != nil {
		h.logger.Error("GET /scents - Failed to fetch scents: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
