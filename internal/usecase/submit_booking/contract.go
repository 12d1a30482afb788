package submit_booking

import (
	"context"
	"time"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// BookingRepository is the bookings storage surface.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountPendingForSlot(ctx context.Context, date string, timeframe domain.Timeframe) (int, error)
}

// UnavailableRepository checks owner-blocked slots.
type UnavailableRepository interface {
	ExistsCovering(ctx context.Context, date string, timeframe domain.Timeframe) (bool, error)
}

// TransactionManager runs the admission check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers the owner notification message.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// TimeProvider supplies the current time (swappable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
