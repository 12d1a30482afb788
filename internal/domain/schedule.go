package domain

import "time"

// The business operates in a single fixed timezone. All date math is funneled
// through YYYY-MM-DD strings as observed in that zone; lexicographic
// comparison is valid because the format is zero-padded.

const businessTimezone = "Australia/Brisbane"

var businessLocation *time.Location

func init() {
	loc, err := time.LoadLocation(businessTimezone)
	if err != nil {
		// Queensland observes no DST, so a fixed +10:00 offset is exact.
		loc = time.FixedZone("AEST", 10*60*60)
	}
	businessLocation = loc
}

// BusinessLocation returns the business timezone.
func BusinessLocation() *time.Location {
	return businessLocation
}

// BusinessDate formats an instant as YYYY-MM-DD in the business timezone,
// independent of the instant's own location.
func BusinessDate(t time.Time) string {
	return t.In(businessLocation).Format(DateFormat)
}

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, businessLocation)
}

// IsPastDate reports whether date is strictly before today in the business
// timezone.
func IsPastDate(date string, now time.Time) bool {
	return date < BusinessDate(now)
}

// IsLeadTimeViolated reports whether the slot starts within leadHours of now.
// Past dates and today always violate; tomorrow violates when the remaining
// hours until midnight plus the slot start hour fall under the threshold;
// anything later never violates.
func IsLeadTimeViolated(date string, timeframe Timeframe, now time.Time, leadHours int) bool {
	nowBiz := now.In(businessLocation)
	today := nowBiz.Format(DateFormat)

	if date <= today {
		return true
	}

	tomorrow := BusinessDate(nowBiz.AddDate(0, 0, 1))
	if date == tomorrow {
		hoursUntilMidnight := 24 - float64(nowBiz.Hour()) - float64(nowBiz.Minute())/60
		hoursUntilSlot := hoursUntilMidnight + float64(SlotStartHour(timeframe))
		return hoursUntilSlot < float64(leadHours)
	}

	return false
}

// IsHorizonExceeded reports whether date is later than today+maxDaysAhead in
// the business timezone. The boundary day itself is bookable.
func IsHorizonExceeded(date string, now time.Time, maxDaysAhead int) bool {
	maxDate := BusinessDate(now.In(businessLocation).AddDate(0, 0, maxDaysAhead))
	return date > maxDate
}
