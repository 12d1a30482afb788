package scents

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// ScentRepository is the scent catalog storage surface.
type ScentRepository interface {
	Create(ctx context.Context, scent *domain.Scent) (*domain.Scent, error)
	List(ctx context.Context, enabledOnly bool) ([]*domain.Scent, error)
	SetEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
}

// Logger is the logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
