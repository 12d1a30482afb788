package models

import (
	"errors"
	"time"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned when a status string is not recognized.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// UpdateBookingRequest updates a booking's status and, for rebooking, moves
// it to a new slot. Date and TimeOfDay come together or not at all.
type UpdateBookingRequest struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	Date      *string `json:"date,omitempty"`
	TimeOfDay *string `json:"timeOfDay,omitempty"`
}

// ToDomainBookingStatus converts a status string into a domain status.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Response models

// BookingResponse is the admin view of a booking.
type BookingResponse struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Mobile            string              `json:"mobile"`
	Address           string              `json:"address"`
	ReturningCustomer bool                `json:"returningCustomer"`
	VehicleYear       string              `json:"vehicleYear"`
	VehicleMake       string              `json:"vehicleMake"`
	VehicleModel      string              `json:"vehicleModel"`
	ServiceType       string              `json:"serviceType"`
	Scent             string              `json:"scent"`
	SpecialRequests   *string             `json:"specialRequests,omitempty"`
	Attachments       []domain.Attachment `json:"attachments,omitempty"`
	Date              string              `json:"date"`
	TimeOfDay         string              `json:"timeOfDay"`
	Status            string              `json:"status"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// AdminBookingsResponse splits bookings into the dashboard's two lists.
type AdminBookingsResponse struct {
	Upcoming []*BookingResponse `json:"upcoming"`
	Past     []*BookingResponse `json:"past"`
}

// FromDomainBooking converts a domain booking into the admin view.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                b.ID,
		Name:              b.Name,
		Mobile:            b.Mobile,
		Address:           b.Address,
		ReturningCustomer: b.ReturningCustomer,
		VehicleYear:       b.VehicleYear,
		VehicleMake:       b.VehicleMake,
		VehicleModel:      b.VehicleModel,
		ServiceType:       string(b.ServiceType),
		Scent:             b.Scent,
		SpecialRequests:   b.SpecialRequests,
		Attachments:       b.Attachments,
		Date:              b.Date,
		TimeOfDay:         string(b.TimeOfDay),
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainBookings converts a booking list, keeping order.
func FromDomainBookings(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}
