package availability

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// BookingRepository lists the pending bookings that hold slots.
type BookingRepository interface {
	ListPendingSlots(ctx context.Context) ([]domain.Slot, error)
}

// UnavailableRepository lists owner-declared blocks.
type UnavailableRepository interface {
	List(ctx context.Context) ([]*domain.UnavailableSlot, error)
}

// Logger is the logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
