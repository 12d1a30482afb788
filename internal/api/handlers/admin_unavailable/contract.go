package admin_unavailable

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/service/unavailable/models"
)

type UnavailableService interface {
	Add(ctx context.Context, req *models.AddSlotsRequest) (int, error)
	Remove(ctx context.Context, req *models.RemoveSlotsRequest) error
	List(ctx context.Context) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
