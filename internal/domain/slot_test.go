package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func pendingBooking(date string, tf Timeframe) *Booking {
	return &Booking{ID: "b-" + date + "-" + string(tf), Date: date, TimeOfDay: tf, Status: StatusPending}
}

func TestExpandUnavailable_All(t *testing.T) {
	slots := ExpandUnavailable(&UnavailableSlot{Date: "2026-03-15", TimeOfDay: TimeframeAll})

	assert.Equal(t, []Slot{
		{Date: "2026-03-15", Timeframe: TimeframeMorning},
		{Date: "2026-03-15", Timeframe: TimeframeAfternoon},
	}, slots)
}

func TestExpandUnavailable_SingleTimeframe(t *testing.T) {
	slots := ExpandUnavailable(&UnavailableSlot{Date: "2026-03-15", TimeOfDay: TimeframeMorning})

	assert.Equal(t, []Slot{{Date: "2026-03-15", Timeframe: TimeframeMorning}}, slots)
}

func TestIsSlotTaken_OnlyPendingCounts(t *testing.T) {
	bookings := []*Booking{
		{Date: "2026-03-15", TimeOfDay: TimeframeMorning, Status: StatusCancelled},
		{Date: "2026-03-15", TimeOfDay: TimeframeAfternoon, Status: StatusCompleted},
	}

	assert.False(t, IsSlotTaken("2026-03-15", TimeframeMorning, bookings))
	assert.False(t, IsSlotTaken("2026-03-15", TimeframeAfternoon, bookings))

	bookings = append(bookings, pendingBooking("2026-03-15", TimeframeMorning))
	assert.True(t, IsSlotTaken("2026-03-15", TimeframeMorning, bookings))
}

func TestIsSlotBlocked_AllCoversBothTimeframes(t *testing.T) {
	blocked := []*UnavailableSlot{{Date: "2026-03-15", TimeOfDay: TimeframeAll}}

	assert.True(t, IsSlotBlocked("2026-03-15", TimeframeMorning, blocked))
	assert.True(t, IsSlotBlocked("2026-03-15", TimeframeAfternoon, blocked))
	assert.False(t, IsSlotBlocked("2026-03-16", TimeframeMorning, blocked))
}

func TestIsSlotBlocked_SpecificTimeframe(t *testing.T) {
	blocked := []*UnavailableSlot{{Date: "2026-03-15", TimeOfDay: TimeframeAfternoon}}

	assert.False(t, IsSlotBlocked("2026-03-15", TimeframeMorning, blocked))
	assert.True(t, IsSlotBlocked("2026-03-15", TimeframeAfternoon, blocked))
}

func TestIsDateFullyOccupied(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, BusinessLocation())
	date := "2026-03-15"

	assert.False(t, IsDateFullyOccupied(date, now, DefaultMinLeadHours, nil, nil))

	// One timeframe taken, the other still open.
	bookings := []*Booking{pendingBooking(date, TimeframeMorning)}
	assert.False(t, IsDateFullyOccupied(date, now, DefaultMinLeadHours, bookings, nil))

	// Taken morning plus blocked afternoon closes the date.
	blocked := []*UnavailableSlot{{Date: date, TimeOfDay: TimeframeAfternoon}}
	assert.True(t, IsDateFullyOccupied(date, now, DefaultMinLeadHours, bookings, blocked))
}

func TestIsDateFullyOccupied_LeadTimeClosesToday(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, BusinessLocation())

	assert.True(t, IsDateFullyOccupied("2026-03-10", now, DefaultMinLeadHours, nil, nil))
}

func TestBookingOccupiesSlot(t *testing.T) {
	b := pendingBooking("2026-03-15", TimeframeMorning)
	assert.True(t, b.OccupiesSlot())

	b.Status = StatusCancelled
	assert.False(t, b.OccupiesSlot())

	b.Status = StatusConfirmed
	assert.False(t, b.OccupiesSlot())
}
