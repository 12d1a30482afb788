package admin_bookings

import "github.com/tjsdetailing/booking-service/internal/service/bookings/models"

// UpdateBookingResponse wraps the updated booking.
type UpdateBookingResponse struct {
	Booking *models.BookingResponse `json:"booking"`
}
