package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bizTime builds an instant at the given Brisbane wall-clock time.
func bizTime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, BusinessLocation())
}

func TestBusinessDate_StableAcrossTimeOfDay(t *testing.T) {
	for _, hour := range []int{0, 9, 13, 23} {
		assert.Equal(t, "2026-03-10", BusinessDate(bizTime(2026, time.March, 10, hour, 59)))
	}
}

func TestBusinessDate_NormalizesCallerTimezone(t *testing.T) {
	// 2026-03-10 22:00 UTC is already 2026-03-11 08:00 in Brisbane.
	utc := time.Date(2026, time.March, 10, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-11", BusinessDate(utc))
}

func TestLeadTime_TodayAlwaysViolates(t *testing.T) {
	for _, hour := range []int{0, 7, 12, 23} {
		now := bizTime(2026, time.March, 10, hour, 0)
		assert.True(t, IsLeadTimeViolated("2026-03-10", TimeframeMorning, now, DefaultMinLeadHours))
		assert.True(t, IsLeadTimeViolated("2026-03-10", TimeframeAfternoon, now, DefaultMinLeadHours))
	}
}

func TestLeadTime_PastDateViolates(t *testing.T) {
	now := bizTime(2026, time.March, 10, 9, 0)
	assert.True(t, IsLeadTimeViolated("2026-03-09", TimeframeMorning, now, DefaultMinLeadHours))
	assert.True(t, IsLeadTimeViolated("2025-12-31", TimeframeAfternoon, now, DefaultMinLeadHours))
}

func TestLeadTime_TwoDaysOutNeverViolates(t *testing.T) {
	now := bizTime(2026, time.March, 10, 23, 59)
	assert.False(t, IsLeadTimeViolated("2026-03-12", TimeframeMorning, now, DefaultMinLeadHours))
	assert.False(t, IsLeadTimeViolated("2026-04-01", TimeframeAfternoon, now, DefaultMinLeadHours))
}

// Pins the canonical slot start hours: morning 08:00, afternoon 13:00. At
// 10:00 today, tomorrow morning is 22h away (violates) and tomorrow afternoon
// is 27h away (does not).
func TestLeadTime_TomorrowBoundary(t *testing.T) {
	require.Equal(t, 8, SlotStartHour(TimeframeMorning))
	require.Equal(t, 13, SlotStartHour(TimeframeAfternoon))

	now := bizTime(2026, time.March, 10, 10, 0)
	assert.True(t, IsLeadTimeViolated("2026-03-11", TimeframeMorning, now, DefaultMinLeadHours))
	assert.False(t, IsLeadTimeViolated("2026-03-11", TimeframeAfternoon, now, DefaultMinLeadHours))
}

func TestLeadTime_TomorrowMorningEarlyEnough(t *testing.T) {
	// At 02:00 today, tomorrow morning is 30h away.
	now := bizTime(2026, time.March, 10, 2, 0)
	assert.False(t, IsLeadTimeViolated("2026-03-11", TimeframeMorning, now, DefaultMinLeadHours))
}

func TestHorizon_BoundaryInclusive(t *testing.T) {
	now := bizTime(2026, time.March, 1, 15, 30)

	assert.False(t, IsHorizonExceeded("2026-03-31", now, DefaultMaxDaysAhead)) // today+30
	assert.True(t, IsHorizonExceeded("2026-04-01", now, DefaultMaxDaysAhead))  // today+31
}

func TestHorizon_CrossesMonthAndYear(t *testing.T) {
	now := bizTime(2026, time.December, 20, 8, 0)
	assert.False(t, IsHorizonExceeded("2027-01-19", now, DefaultMaxDaysAhead))
	assert.True(t, IsHorizonExceeded("2027-01-20", now, DefaultMaxDaysAhead))
}

func TestIsPastDate(t *testing.T) {
	now := bizTime(2026, time.March, 10, 0, 1)
	assert.True(t, IsPastDate("2026-03-09", now))
	assert.False(t, IsPastDate("2026-03-10", now))
	assert.False(t, IsPastDate("2026-03-11", now))
}
