// Package report groups time entries into day or project buckets and sums
// their durations.
package report

import (
	"regexp"
	"sort"
	"time"

	"toggl-cli/internal/domain"
)

// Mode selects how entries are bucketed.
type Mode int

const (
	ByDay Mode = iota
	ByProject
)

// NoProject labels the bucket of entries without a project.
const NoProject = "(No Project)"

// DefaultDayLayout is the day bucket layout used when none is configured.
const DefaultDayLayout = "2006-01-02 (Monday)"

// Options controls Aggregate. Zero values fall back to UTC, DefaultDayLayout
// and the current time.
type Options struct {
	Mode      Mode
	Filter    *regexp.Regexp
	Location  *time.Location
	DayLayout string
	// Now is the single instant running entries are measured against.
	Now time.Time
}

// Bucket is one group of entries and the sum of their effective durations.
type Bucket struct {
	Key     string
	Entries []domain.TimeEntry
	Seconds int64
}

// Report is the ordered result of Aggregate.
type Report struct {
	Mode    Mode
	Buckets []Bucket
	Total   int64
	Now     time.Time
}

// EffectiveDuration returns the stored duration of a stopped entry, or the
// whole seconds elapsed between its start and now for a running one.
func EffectiveDuration(e domain.TimeEntry, now time.Time) int64 {
	if e.DurationSec >= 0 {
		return e.DurationSec
	}
	elapsed := now.UTC().Sub(e.Start.UTC())
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / time.Second)
}

// FilterEntries keeps the entries whose description matches re.
func FilterEntries(entries []domain.TimeEntry, re *regexp.Regexp) []domain.TimeEntry {
	if re == nil {
		return entries
	}
	out := make([]domain.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if re.MatchString(e.Description) {
			out = append(out, e)
		}
	}
	return out
}

// Running returns the first entry with a negative duration. The service is
// expected to report at most one; any others are ignored.
func Running(entries []domain.TimeEntry) (domain.TimeEntry, bool) {
	for _, e := range entries {
		if e.Running() {
			return e, true
		}
	}
	return domain.TimeEntry{}, false
}

// Aggregate buckets entries according to opts.
func Aggregate(entries []domain.TimeEntry, opts Options) Report {
	opts = opts.withDefaults()
	entries = FilterEntries(entries, opts.Filter)

	var keyOf func(domain.TimeEntry) string
	switch opts.Mode {
	case ByProject:
		keyOf = projectKey
	default:
		keyOf = func(e domain.TimeEntry) string {
			return e.Start.In(opts.Location).Format(opts.DayLayout)
		}
	}

	index := make(map[string]int)
	var buckets []Bucket
	for _, e := range entries {
		k := keyOf(e)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Key: k})
		}
		buckets[i].Entries = append(buckets[i].Entries, e)
		buckets[i].Seconds += EffectiveDuration(e, opts.Now)
	}

	if opts.Mode == ByDay {
		sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Key < buckets[j].Key })
	}

	rep := Report{Mode: opts.Mode, Buckets: buckets, Now: opts.Now}
	for _, b := range buckets {
		rep.Total += b.Seconds
	}
	return rep
}

func projectKey(e domain.TimeEntry) string {
	if e.Project == nil {
		return NoProject
	}
	return e.Project.Name
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.DayLayout == "" {
		o.DayLayout = DefaultDayLayout
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}
