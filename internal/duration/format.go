// Package duration renders second counts as compact strings like "1h 1m 1s"
// and parses the duration and estimate forms accepted on the command line.
package duration

import (
	"strconv"
	"strings"
)

// Unit is one step of a unit table: a suffix and its length in seconds.
type Unit struct {
	Suffix  string
	Seconds int64
}

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
)

// Standard is the default unit table, largest first. A year is 52 weeks.
var Standard = []Unit{
	{"y", 52 * week},
	{"w", week},
	{"d", day},
	{"h", hour},
	{"m", minute},
	{"s", 1},
}

// ManDays replaces years, weeks and days with an 8 hour man-day.
var ManDays = []Unit{
	{"md", 8 * hour},
	{"h", hour},
	{"m", minute},
	{"s", 1},
}

// Formatter turns seconds into "<value><suffix>" parts joined by Separator.
type Formatter struct {
	Units     []Unit
	Separator string
	// Plural appends "s" to a suffix whose value is greater than one.
	Plural bool
}

// New returns a formatter over the standard or man-day table.
func New(manDays bool, separator string) Formatter {
	units := Standard
	if manDays {
		units = ManDays
	}
	return Formatter{Units: units, Separator: separator}
}

// Format renders seconds. Zero (or a negative count) yields "".
func (f Formatter) Format(seconds int64) string {
	var parts []string
	remaining := seconds
	for _, u := range f.Units {
		value := remaining / u.Seconds
		if value > 0 {
			remaining %= u.Seconds
			suffix := u.Suffix
			if f.Plural && value > 1 {
				suffix += "s"
			}
			parts = append(parts, strconv.FormatInt(value, 10)+suffix)
		}
		if remaining < 1 {
			break
		}
	}
	return strings.Join(parts, f.Separator)
}
