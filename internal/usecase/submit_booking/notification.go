package submit_booking

import (
	"fmt"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// buildNotificationMessage renders the owner SMS for a new booking.
// dashboardBaseURL is the public site root, without a trailing slash.
func buildNotificationMessage(b *domain.Booking, dashboardBaseURL string) string {
	returningTag := ""
	if b.ReturningCustomer {
		returningTag = " [RETURNING]"
	}

	scent := ""
	if b.Scent != domain.ScentNone {
		scent = " - " + b.Scent
	}

	notes := ""
	if b.SpecialRequests != nil && *b.SpecialRequests != "" {
		notes = "\n\nNotes: " + *b.SpecialRequests
	}

	return fmt.Sprintf("New Booking%s!\n\n%s\n%s (%s)\n\n%s %s %s\n%s%s\n\n%s\n%s%s\n\n%s/dashboard",
		returningTag,
		b.Name,
		b.Date, b.TimeOfDay,
		b.VehicleYear, b.VehicleMake, b.VehicleModel,
		domain.ServiceTypeLabel(b.ServiceType), scent,
		b.Address,
		b.Mobile, notes,
		dashboardBaseURL,
	)
}
