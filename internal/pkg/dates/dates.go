// Package dates holds the UTC calendar-day helpers shared by the trending
// builder and its dispatch surfaces.
package dates

import "time"

// DayLayout is the wire format for calendar-date keys (zero-padded).
const DayLayout = "2006-01-02"

// DayWindow returns the half-open UTC window [midnight(t), midnight(t)+24h)
// of the calendar day containing t.
func DayWindow(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// DayKey formats t's UTC calendar date as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD string as UTC midnight of that date.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.UTC)
}
