package duration

import (
	"fmt"
	"strconv"
	"strings"

	"toggl-cli/internal/domain"
)

// Parse reads "[[hours:]minutes:]seconds" and returns the total in seconds.
func Parse(s string) (int64, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) > 3 {
		return 0, fmt.Errorf("%w: duration %q, expected [[HH:]MM:]SS", domain.ErrInvalidInput, s)
	}
	var total int64
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: duration %q, expected [[HH:]MM:]SS", domain.ErrInvalidInput, s)
		}
		total = total*60 + v
	}
	return total, nil
}

// ParseEstimate reads an integer with an optional s, m or h suffix
// (seconds when omitted). An empty string is zero.
func ParseEstimate(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	in := s
	mult := int64(1)
	switch {
	case strings.HasSuffix(s, "s"):
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "m"):
		mult = minute
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "h"):
		mult = hour
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: estimate %q, expected an integer suffixed with s, m or h", domain.ErrInvalidInput, in)
	}
	return v * mult, nil
}
