package domain

import "regexp"

// Booking rule defaults, overridable through config.
const (
	DefaultMinLeadHours = 24
	DefaultMaxDaysAhead = 30
)

// Slot start hours in the business timezone (24h clock).
const (
	MorningStartHour   = 8
	AfternoonStartHour = 13
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MobilePattern matches Australian mobile numbers (04XX XXX XXX or
// +614XX XXX XXX) after whitespace stripping.
var MobilePattern = regexp.MustCompile(`^(\+?61|0)4\d{8}$`)

// ScentNone and ScentNoPreference are sentinel scent selections stored on the
// booking instead of a catalog name.
const (
	ScentNone         = "none"
	ScentNoPreference = "no-preference"
)
