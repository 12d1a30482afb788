package submit_booking

import "errors"

var (
	// ErrInvalidInput is returned on missing or malformed request fields.
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrLeadTime is returned when the slot starts less than the minimum
	// notice period from now.
	ErrLeadTime = errors.New("submit_booking: slot is within the minimum notice period")

	// ErrHorizon is returned when the date is beyond the booking window.
	ErrHorizon = errors.New("submit_booking: date is too far in the future")

	// ErrSlotTaken is returned when a pending booking already holds the slot.
	ErrSlotTaken = errors.New("submit_booking: slot is already booked")

	// ErrSlotBlocked is returned when the owner marked the slot unavailable.
	ErrSlotBlocked = errors.New("submit_booking: slot is not available")

	// ErrInternal is returned on internal usecase errors.
	ErrInternal = errors.New("submit_booking: internal error")
)
