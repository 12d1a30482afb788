package models

import "github.com/tjsdetailing/booking-service/internal/domain"

// PricingEntryResponse is one public pricing row. Prices are whole dollars.
type PricingEntryResponse struct {
	VehicleType   string `json:"vehicleType"`
	InteriorPrice int    `json:"interiorPrice"`
	ExteriorPrice int    `json:"exteriorPrice"`
	BothPrice     int    `json:"bothPrice"`
}

// PricingResponse is the pricing table in display order.
type PricingResponse struct {
	Pricing []*PricingEntryResponse `json:"pricing"`
}

// FromDomainEntries converts the pricing rows, keeping order.
func FromDomainEntries(entries []*domain.PricingEntry) []*PricingEntryResponse {
	result := make([]*PricingEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, &PricingEntryResponse{
			VehicleType:   e.VehicleType,
			InteriorPrice: e.InteriorPrice,
			ExteriorPrice: e.ExteriorPrice,
			BothPrice:     e.BothPrice,
		})
	}
	return result
}
