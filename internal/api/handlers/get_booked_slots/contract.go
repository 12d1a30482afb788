package get_booked_slots

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	GetTakenSlots(ctx context.Context) (*models.TakenSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
