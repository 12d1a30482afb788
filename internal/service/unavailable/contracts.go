package unavailable

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// UnavailableRepository is the unavailable-slots storage surface.
type UnavailableRepository interface {
	Add(ctx context.Context, slots []*domain.UnavailableSlot) error
	Remove(ctx context.Context, date string, timeOfDay domain.Timeframe) error
	List(ctx context.Context) ([]*domain.UnavailableSlot, error)
}

// Logger is the logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
