package availability

import (
	"time"

	"github.com/tjsdetailing/booking-service/internal/domain"
)

// Selection rules shared by the booking form and the blocking calendar.
// Taken slots here are the combined occupied list, lead time is checked
// against the clock.

// IsTimeframeSelectable reports whether a customer can still pick the given
// half-day: not inside the notice period, not occupied.
func IsTimeframeSelectable(date string, timeframe domain.Timeframe, now time.Time, leadHours int, taken []domain.Slot) bool {
	if domain.IsLeadTimeViolated(date, timeframe, now, leadHours) {
		return false
	}
	for _, slot := range taken {
		if slot.Date == date && slot.Timeframe == timeframe {
			return false
		}
	}
	return true
}

// IsDateSelectableForBooking reports whether a date has at least one
// selectable timeframe.
func IsDateSelectableForBooking(date string, now time.Time, leadHours int, taken []domain.Slot) bool {
	return IsTimeframeSelectable(date, domain.TimeframeMorning, now, leadHours, taken) ||
		IsTimeframeSelectable(date, domain.TimeframeAfternoon, now, leadHours, taken)
}

// IsDateSelectableForBlock reports whether the owner can add a block with the
// given target on a date. A full-day block on the date always disqualifies it.
// Blocking "all" requires a date with no blocks at all; a specific timeframe
// only requires that timeframe to be free of blocks.
func IsDateSelectableForBlock(date string, target domain.Timeframe, now time.Time, unavailable []*domain.UnavailableSlot) bool {
	if domain.IsPastDate(date, now) {
		return false
	}

	for _, u := range unavailable {
		if u.Date != date {
			continue
		}
		if u.TimeOfDay == domain.TimeframeAll {
			return false
		}
		if target == domain.TimeframeAll {
			return false
		}
		if u.TimeOfDay == target {
			return false
		}
	}
	return true
}
