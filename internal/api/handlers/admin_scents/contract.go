package admin_scents

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/service/scents/models"
)

type ScentsService interface {
	List(ctx context.Context) (*models.ScentListResponse, error)
	Create(ctx context.Context, req *models.CreateScentRequest) (*models.ScentResponse, error)
	SetEnabled(ctx context.Context, req *models.ToggleScentRequest) error
	Delete(ctx context.Context, req *models.DeleteScentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
