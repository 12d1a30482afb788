package submit_booking

import (
	"fmt"
	"strings"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// normalizeMobile strips all whitespace from the submitted number.
func normalizeMobile(mobile string) string {
	return strings.Join(strings.Fields(mobile), "")
}

// validateRequest checks required fields and formats. It does not touch
// time-dependent rules, those run against the clock in Execute.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Mobile) == "" {
		return fmt.Errorf("%w: mobile is required", ErrInvalidInput)
	}

	if !domain.MobilePattern.MatchString(normalizeMobile(req.Mobile)) {
		return fmt.Errorf("%w: invalid mobile number", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleYear) == "" {
		return fmt.Errorf("%w: vehicleYear is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleMake) == "" {
		return fmt.Errorf("%w: vehicleMake is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleModel) == "" {
		return fmt.Errorf("%w: vehicleModel is required", ErrInvalidInput)
	}

	if !domain.IsValidServiceType(domain.ServiceType(req.ServiceType)) {
		return fmt.Errorf("%w: invalid serviceType", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Scent) == "" {
		return fmt.Errorf("%w: scent is required", ErrInvalidInput)
	}

	if _, err := domain.ParseDate(req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if !domain.IsValidTimeframe(domain.Timeframe(req.TimeOfDay)) {
		return fmt.Errorf("%w: timeOfDay must be morning or afternoon", ErrInvalidInput)
	}

	for _, att := range req.Attachments {
		if att.URL == "" {
			return fmt.Errorf("%w: attachment url is required", ErrInvalidInput)
		}
		if !domain.IsValidAttachmentType(att.Type) {
			return fmt.Errorf("%w: attachment type must be image or video", ErrInvalidInput)
		}
	}

	return nil
}
