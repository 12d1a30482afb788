package submit_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tjsdetailing/booking-service/internal/domain"
	"github.com/tjsdetailing/booking-service/pkg/ptr"
)

func TestBuildNotificationMessage_FullBooking(t *testing.T) {
	b := &domain.Booking{
		Name:              "Sam Carter",
		Mobile:            "0412345678",
		Address:           "12 Wharf St, Brisbane City QLD",
		ReturningCustomer: true,
		VehicleYear:       "2021",
		VehicleMake:       "Toyota",
		VehicleModel:      "Hilux",
		ServiceType:       domain.ServiceBoth,
		Scent:             "vanilla",
		SpecialRequests:   ptr.Ptr("Pet hair in the back seats"),
		Date:              "2026-03-15",
		TimeOfDay:         domain.TimeframeMorning,
	}

	msg := buildNotificationMessage(b, "https://tjsdetailing.example.com")

	expected := "New Booking [RETURNING]!\n\n" +
		"Sam Carter\n" +
		"2026-03-15 (morning)\n\n" +
		"2021 Toyota Hilux\n" +
		"Full Detail (Interior & Exterior) - vanilla\n\n" +
		"12 Wharf St, Brisbane City QLD\n" +
		"0412345678\n\n" +
		"Notes: Pet hair in the back seats\n\n" +
		"https://tjsdetailing.example.com/dashboard"
	assert.Equal(t, expected, msg)
}

func TestBuildNotificationMessage_MinimalBooking(t *testing.T) {
	b := &domain.Booking{
		Name:         "Alex Reid",
		Mobile:       "0498765432",
		Address:      "4 Beach Rd, Redcliffe QLD",
		VehicleYear:  "2018",
		VehicleMake:  "Mazda",
		VehicleModel: "CX-5",
		ServiceType:  domain.ServiceExterior,
		Scent:        domain.ScentNone,
		Date:         "2026-03-20",
		TimeOfDay:    domain.TimeframeAfternoon,
	}

	msg := buildNotificationMessage(b, "https://tjsdetailing.example.com")

	assert.Contains(t, msg, "New Booking!")
	assert.Contains(t, msg, "Exterior Only\n")
	assert.NotContains(t, msg, " - none")
	assert.NotContains(t, msg, "Notes:")
	assert.NotContains(t, msg, "[RETURNING]")
}
