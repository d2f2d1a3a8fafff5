package utils

import "time"

// startTimeLayout is the datetime-local format submitted by the booking
// form, e.g. "2024-01-01T09:00".
const startTimeLayout = "2006-01-02T15:04"

// ParseStartTime parses a booking start time in the form's
// "YYYY-MM-DDTHH:MM" format and returns it in UTC.  Seconds are not
// accepted; appointment boundaries are minute-aligned.
func ParseStartTime(s string) (time.Time, error) {
	t, err := time.Parse(startTimeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ParseTimeOfDay parses a wall-clock "HH:MM" value such as a staff
// member's shift boundary.
func ParseTimeOfDay(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}
