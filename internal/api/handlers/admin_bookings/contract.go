package admin_bookings

import (
	"context"

	"github.com/tjsdetailing/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	ListForAdmin(ctx context.Context) (*models.AdminBookingsResponse, error)
	Update(ctx context.Context, req *models.UpdateBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
