package get_pricing

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/service/pricing/models"
)

type PricingService interface {
	List(ctx context.Context) (*models.PricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
