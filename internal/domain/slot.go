package domain

import "time"

// Timeframe is a half-day window. TimeframeAll is only legal on unavailable
// slots, where it stands for both windows of the date.
type Timeframe string

const (
	TimeframeMorning   Timeframe = "morning"
	TimeframeAfternoon Timeframe = "afternoon"
	TimeframeAll       Timeframe = "all"
)

// IsValidTimeframe reports whether t is a bookable timeframe.
func IsValidTimeframe(t Timeframe) bool {
	return t == TimeframeMorning || t == TimeframeAfternoon
}

// IsValidBlockTarget reports whether t is usable on an unavailable slot.
func IsValidBlockTarget(t Timeframe) bool {
	return IsValidTimeframe(t) || t == TimeframeAll
}

// TimeframeOrder sorts morning before afternoon within a date.
func TimeframeOrder(t Timeframe) int {
	if t == TimeframeAfternoon {
		return 1
	}
	return 0
}

// SlotStartHour returns the start hour of a timeframe in the business
// timezone.
func SlotStartHour(t Timeframe) int {
	if t == TimeframeAfternoon {
		return AfternoonStartHour
	}
	return MorningStartHour
}

// Slot is a schedulable half-day: a date plus a timeframe.
type Slot struct {
	Date      string
	Timeframe Timeframe
}

// UnavailableSlot is an administrator-declared block on a date. TimeOfDay may
// be "all", which covers both timeframes.
type UnavailableSlot struct {
	ID        string
	Date      string
	TimeOfDay Timeframe
	CreatedAt time.Time
}

// ExpandUnavailable converts an unavailable entry into concrete slots,
// expanding "all" into morning and afternoon.
func ExpandUnavailable(u *UnavailableSlot) []Slot {
	if u.TimeOfDay == TimeframeAll {
		return []Slot{
			{Date: u.Date, Timeframe: TimeframeMorning},
			{Date: u.Date, Timeframe: TimeframeAfternoon},
		}
	}
	return []Slot{{Date: u.Date, Timeframe: u.TimeOfDay}}
}

// IsSlotTaken reports whether any pending booking occupies (date, timeframe).
func IsSlotTaken(date string, timeframe Timeframe, bookings []*Booking) bool {
	for _, b := range bookings {
		if b.OccupiesSlot() && b.Date == date && b.TimeOfDay == timeframe {
			return true
		}
	}
	return false
}

// IsSlotBlocked reports whether an unavailable entry covers (date, timeframe),
// directly or via "all".
func IsSlotBlocked(date string, timeframe Timeframe, unavailable []*UnavailableSlot) bool {
	for _, u := range unavailable {
		for _, slot := range ExpandUnavailable(u) {
			if slot.Date == date && slot.Timeframe == timeframe {
				return true
			}
		}
	}
	return false
}

// IsDateFullyOccupied reports whether both timeframes of a date are taken,
// blocked, or inside the lead-time window.
func IsDateFullyOccupied(date string, now time.Time, leadHours int, bookings []*Booking, unavailable []*UnavailableSlot) bool {
	for _, tf := range []Timeframe{TimeframeMorning, TimeframeAfternoon} {
		if IsLeadTimeViolated(date, tf, now, leadHours) {
			continue
		}
		if IsSlotTaken(date, tf, bookings) {
			continue
		}
		if IsSlotBlocked(date, tf, unavailable) {
			continue
		}
		return false
	}
	return true
}
