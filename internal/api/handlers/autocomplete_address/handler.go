package autocomplete_address

import (
	"net/http"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
	"github.com/tjsdetailing/booking-service/internal/integrations/geocoder"
)

// minQueryLength mirrors the booking form, which only queries from the third
// character on.
const minQueryLength = 3

// AddressesResponse is the suggestion list for the address field.
type AddressesResponse struct {
	Addresses []geocoder.Suggestion `json:"addresses"`
}

type Handler struct {
	client GeocoderClient
	logger Logger
}

func NewHandler(client GeocoderClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/address?q=...
// Short queries return an empty list instead of an error.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if len(query) < minQueryLength {
		handlers.RespondJSON(w, http.StatusOK, AddressesResponse{Addresses: []geocoder.Suggestion{}})
		return
	}

	suggestions, err := h.client.Autocomplete(r.Context(), query)
	if err != nil {
		h.logger.Error("GET /address - Autocomplete failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AddressesResponse{Addresses: suggestions})
}
