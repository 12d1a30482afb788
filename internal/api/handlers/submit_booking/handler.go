package submit_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tjsdetailing/booking-service/internal/api/handlers"
	submitBooking "github.com/tjsdetailing/booking-service/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotTaken          = "This time slot is already booked"
	msgSlotBlocked        = "This time slot is not available"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, timeOfDay=%s", req.Date, req.TimeOfDay)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, submitBooking.ErrSlotBlocked):
			h.logger.Warn("POST /bookings - Slot blocked: date=%s, timeOfDay=%s", req.Date, req.TimeOfDay)
			handlers.RespondError(w, http.StatusConflict, msgSlotBlocked)

		case errors.Is(err, submitBooking.ErrLeadTime),
			errors.Is(err, submitBooking.ErrHorizon),
			errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Rejected: %v", err)
			handlers.RespondBadRequest(w, userMessage(err))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, date=%s, timeOfDay=%s",
		result.ID, result.Date, result.TimeOfDay)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// userMessage strips the sentinel prefix so clients see only the detail,
// e.g. "bookings require at least 24 hours notice".
func userMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
