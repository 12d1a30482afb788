package get_scents

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/service/scents/models"
)

type ScentsService interface {
	ListEnabled(ctx context.Context) (*models.ScentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
