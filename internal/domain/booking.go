package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatuses is the closed set of statuses the lifecycle accepts.
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus reports whether s is one of the four recognized statuses.
func IsValidStatus(s BookingStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// HistoricalStatuses are statuses that move a booking to the past view and
// release its slot.
var HistoricalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}

// ServiceType represents the detailing service selection.
type ServiceType string

const (
	ServiceInterior ServiceType = "interior"
	ServiceExterior ServiceType = "exterior"
	ServiceBoth     ServiceType = "both"
)

// IsValidServiceType reports whether s is a recognized service type.
func IsValidServiceType(s ServiceType) bool {
	return s == ServiceInterior || s == ServiceExterior || s == ServiceBoth
}

// ServiceTypeLabel returns the customer-facing label for a service type,
// falling back to the raw value for unknown input.
func ServiceTypeLabel(s ServiceType) string {
	switch s {
	case ServiceBoth:
		return "Full Detail (Interior & Exterior)"
	case ServiceInterior:
		return "Interior Only"
	case ServiceExterior:
		return "Exterior Only"
	default:
		return string(s)
	}
}

// Booking represents a detailing appointment request.
type Booking struct {
	ID                string
	Name              string
	Mobile            string
	Address           string
	ReturningCustomer bool
	VehicleYear       string
	VehicleMake       string
	VehicleModel      string
	ServiceType       ServiceType
	Scent             string
	SpecialRequests   *string
	Attachments       []Attachment
	Date              string // YYYY-MM-DD in the business timezone
	TimeOfDay         Timeframe
	Status            BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot reports whether the booking blocks its (date, timeframe) slot.
// Only pending bookings hold a slot; completed and cancelled ones are history.
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusPending
}

// Slot returns the booking's (date, timeframe) pair.
func (b *Booking) Slot() Slot {
	return Slot{Date: b.Date, Timeframe: b.TimeOfDay}
}
