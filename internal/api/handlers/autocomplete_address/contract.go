package autocomplete_address

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/integrations/geocoder"
)

type GeocoderClient interface {
	Autocomplete(ctx context.Context, query string) ([]geocoder.Suggestion, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
