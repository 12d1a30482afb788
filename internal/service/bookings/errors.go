package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking has the given id.
	ErrBookingNotFound = errors.New("bookings service: booking not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("bookings service: invalid input data")

	// ErrInvalidStatus is returned on an unrecognized status value.
	ErrInvalidStatus = errors.New("bookings service: invalid status")

	// ErrSlotConflict is returned when a rebook targets an occupied slot.
	ErrSlotConflict = errors.New("bookings service: slot is already booked")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("bookings service: internal error")
)
