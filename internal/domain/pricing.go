package domain

import "time"

// PricingEntry is a per-vehicle-type price row for the public pricing table.
// Prices are whole dollars.
type PricingEntry struct {
	ID            string
	VehicleType   string
	InteriorPrice int
	ExteriorPrice int
	BothPrice     int
	SortOrder     int
	CreatedAt     time.Time
}
