package submit_booking

import (
	"time"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// Request carries the customer's booking form.
type Request struct {
	Name              string
	Mobile            string
	Address           string
	ReturningCustomer bool
	VehicleYear       string
	VehicleMake       string
	VehicleModel      string
	ServiceType       string
	Scent             string
	SpecialRequests   *string
	Attachments       []domain.Attachment
	Date              string
	TimeOfDay         string
}

// Response is the created booking.
type Response struct {
	ID                string
	Name              string
	Mobile            string
	Address           string
	ReturningCustomer bool
	VehicleYear       string
	VehicleMake       string
	VehicleModel      string
	ServiceType       string
	Scent             string
	SpecialRequests   *string
	Attachments       []domain.Attachment
	Date              string
	TimeOfDay         string
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
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
