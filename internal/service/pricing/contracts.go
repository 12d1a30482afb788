package pricing

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// PricingRepository is the pricing table storage surface.
type PricingRepository interface {
	List(ctx context.Context) ([]*domain.PricingEntry, error)
}

// Logger is the logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
