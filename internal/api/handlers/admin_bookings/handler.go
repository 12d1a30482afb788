package admin_bookings

import (
	"errors"
	"net/http"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
	bookingsService "github.com/tjsdetailing/booking-service/internal/service/bookings"
	"github.com/tjsdetailing/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "Booking not found"
	msgInvalidStatus      = "Invalid status"
	msgSlotConflict       = "This time slot is already booked"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/bookings
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListForAdmin(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to fetch bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PATCH /api/v1/admin/bookings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings - Booking not found: id=%s", req.ID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrSlotConflict):
			h.logger.Warn("PATCH /admin/bookings - Slot conflict: id=%s", req.ID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, bookingsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings - Invalid status=%s, id=%s", req.Status, req.ID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /admin/bookings - Failed to update booking id=%s: %v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings - Booking updated: id=%s, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, UpdateBookingResponse{Booking: result})
}
