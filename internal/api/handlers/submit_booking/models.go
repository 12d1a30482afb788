package submit_booking

import (
	"time"

	"github.com/tjsdetailing/booking-service/internal/domain"
	submitBooking "github.com/tjsdetailing/booking-service/internal/usecase/submit_booking"
)

// AttachmentInput is one uploaded file reference on the request.
type AttachmentInput struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Name              string            `json:"name"`
	Mobile            string            `json:"mobile"`
	Address           string            `json:"address"`
	ReturningCustomer bool              `json:"returningCustomer"`
	VehicleYear       string            `json:"vehicleYear"`
	VehicleMake       string            `json:"vehicleMake"`
	VehicleModel      string            `json:"vehicleModel"`
	ServiceType       string            `json:"serviceType"`
	Scent             string            `json:"scent"`
	SpecialRequests   *string           `json:"specialRequests,omitempty"`
	Attachments       []AttachmentInput `json:"attachments,omitempty"`
	Date              string            `json:"date"`
	TimeOfDay         string            `json:"timeOfDay"`
}

// BookingResponse HTTP response model
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
	CreatedAt         string              `json:"createdAt"`
	UpdatedAt         string              `json:"updatedAt"`
}

// SubmitBookingResponse wraps the created booking.
type SubmitBookingResponse struct {
	Booking *BookingResponse `json:"booking"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *SubmitBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	attachments := make([]domain.Attachment, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		attachments = append(attachments, domain.Attachment{
			URL:  a.URL,
			Type: domain.AttachmentType(a.Type),
			Name: a.Name,
		})
	}

	return &submitBooking.Request{
		Name:              r.Name,
		Mobile:            r.Mobile,
		Address:           r.Address,
		ReturningCustomer: r.ReturningCustomer,
		VehicleYear:       r.VehicleYear,
		VehicleMake:       r.VehicleMake,
		VehicleModel:      r.VehicleModel,
		ServiceType:       r.ServiceType,
		Scent:             r.Scent,
		SpecialRequests:   r.SpecialRequests,
		Attachments:       attachments,
		Date:              r.Date,
		TimeOfDay:         r.TimeOfDay,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		Booking: &BookingResponse{
			ID:                resp.ID,
			Name:              resp.Name,
			Mobile:            resp.Mobile,
			Address:           resp.Address,
			ReturningCustomer: resp.ReturningCustomer,
			VehicleYear:       resp.VehicleYear,
			VehicleMake:       resp.VehicleMake,
			VehicleModel:      resp.VehicleModel,
			ServiceType:       resp.ServiceType,
			Scent:             resp.Scent,
			SpecialRequests:   resp.SpecialRequests,
			Attachments:       resp.Attachments,
			Date:              resp.Date,
			TimeOfDay:         resp.TimeOfDay,
			Status:            resp.Status,
			CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
			UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
		},
	}
}
