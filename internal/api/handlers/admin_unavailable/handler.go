package admin_unavailable

import (
	"errors"
	"net/http"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
	unavailableService "github.com/tjsdetailing/booking-service/internal/service/unavailable"
	"github.com/tjsdetailing/booking-service/internal/service/unavailable/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlots       = "Missing or invalid slots array"
)

type Handler struct {
	service UnavailableService
	logger  Logger
}

func NewHandler(service UnavailableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/unavailable
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/unavailable - Failed to fetch slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdd POST /api/v1/admin/unavailable
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req models.AddSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/unavailable - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	count, err := h.service.Add(r.Context(), &req)
	if err != nil {
		if errors.Is(err, unavailableService.ErrInvalidInput) {
			h.logger.Warn("POST /admin/unavailable - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlots)
			return
		}
		h.logger.Error("POST /admin/unavailable - Failed to add slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/unavailable - Blocked %d slots", count)
	handlers.RespondJSON(w, http.StatusOK, AddSlotsResponse{Success: true, Count: count})
}

// HandleRemove DELETE /api/v1/admin/unavailable
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /admin/unavailable - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Remove(r.Context(), &req); err != nil {
		if errors.Is(err, unavailableService.ErrInvalidInput) {
			h.logger.Warn("DELETE /admin/unavailable - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlots)
			return
		}
		h.logger.Error("DELETE /admin/unavailable - Failed to remove slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/unavailable - Unblocked %d slots", len(req.Slots))
	handlers.RespondJSON(w, http.StatusOK, RemoveSlotsResponse{Success: true})
}
