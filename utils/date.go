package utils

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// timestamp forms accepted before falling back to a plain yyyy-MM-dd date
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseDate accepts a full timestamp or a plain yyyy-MM-dd string and returns
// the start of that calendar day in loc. The calendar day is the one written
// in the input, whatever offset it carries.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return StartOfDay(t, loc), nil
		}
	}

	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("failed to parse date: %v", s)
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayRange returns the inclusive bounds [00:00:00, 23:59:59] of the calendar
// day containing t.
func DayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), time.Date(y, m, d, 23, 59, 59, 0, loc)
}
