package utils

import "time"

const DateLayout = "2006-01-02"

// DateOnly truncates a time to its calendar date in UTC. All scheduling keys
// compare dates this way so "today" never depends on the time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
