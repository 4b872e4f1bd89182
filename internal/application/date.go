package application

import (
	"time"

	"rosterbot/internal/domain"
)

// EventDateLayout is the only accepted input format (DD/MM/YYYY).
const EventDateLayout = "02/01/2006"

// ParseEventDate parses a strict DD/MM/YYYY date. Any other shape, including
// surrounding whitespace, returns domain.ErrInvalidDate.
func ParseEventDate(s string) (time.Time, error) {
	t, err := time.Parse(EventDateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return t, nil
}

// FormatEventDate renders a date back in the input format.
func FormatEventDate(t time.Time) string {
	return t.Format(EventDateLayout)
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
