package domain

import "time"

// Scent is a catalog entry offered on the booking form. Bookings store the
// scent name as free text, so disabling a scent never rewrites history.
type Scent struct {
	ID        string
	Name      string
	Enabled   bool
	CreatedAt time.Time
}
