package helper

import "time"

// DayFormat is the calendar-day layout used for attendance dates. It sorts
// lexicographically in chronological order.
const DayFormat = "2006-01-02"

// ParseDay parses an attendance date.
func ParseDay(date string) (time.Time, error) {
	return time.Parse(DayFormat, date)
}

// Day formats t as an attendance date.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}
