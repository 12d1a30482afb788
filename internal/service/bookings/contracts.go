package bookings

import (
	"context"
	"time"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// BookingRepository is the bookings storage surface.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListUpcoming(ctx context.Context, today string) ([]*domain.Booking, error)
	ListPast(ctx context.Context, today string) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, status domain.BookingStatus, date *string, timeOfDay *domain.Timeframe) (*domain.Booking, error)
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
