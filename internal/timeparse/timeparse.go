// Package timeparse reads the date/time strings accepted by the CLI.
package timeparse

import (
	"fmt"
	"strings"
	"time"

	"toggl-cli/internal/domain"
)

// Layouts carrying their own zone.
var zoned = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z07:00",
}

// Layouts interpreted in the display timezone.
var local = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02 3:04PM",
	"2006-01-02 03:04PM",
	"2006-01-02",
}

// Clock-only layouts apply to the day of now in loc.
var clock = []string{
	"15:04:05",
	"15:04",
	"3:04PM",
	"3:04pm",
	"3PM",
	"3pm",
}

// Parse accepts RFC3339, date-time, date-only (midnight) or a bare clock time
// (today). Values without an explicit offset are read in loc.
func Parse(val string, loc *time.Location, now time.Time) (time.Time, error) {
	val = strings.TrimSpace(val)
	if loc == nil {
		loc = time.UTC
	}
	for _, l := range zoned {
		if t, err := time.Parse(l, val); err == nil {
			return t, nil
		}
	}
	for _, l := range local {
		if t, err := time.ParseInLocation(l, val, loc); err == nil {
			return t, nil
		}
	}
	today := now.In(loc)
	for _, l := range clock {
		if t, err := time.ParseInLocation(l, val, loc); err == nil {
			return time.Date(today.Year(), today.Month(), today.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: time %q, expected RFC3339, YYYY-MM-DD[ HH:MM[:SS]] or HH:MM", domain.ErrInvalidInput, val)
}

// WeekStart returns Monday 00:00 of the week containing t, in t's location.
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	y, m, d := t.AddDate(0, 0, -offset+1).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayEnd returns 23:59:59 of t's day, in t's location.
func DayEnd(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
