package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"toggl-cli/internal/domain"
	"toggl-cli/internal/duration"
)

// DefaultEntryLayout renders start and stop instants in verbose entry lines.
const DefaultEntryLayout = "2006-01-02 03:04PM"

// Renderer prints entries and reports as plain console text.
type Renderer struct {
	ManDays     bool
	Location    *time.Location
	EntryLayout string
	// Verbose adds the entry id and its start/stop range.
	Verbose bool
	// Quiet prints only bucket headings and sums.
	Quiet bool
	// Sum appends the grand total.
	Sum bool
}

// Entry renders one entry line. With showProject false the entry's start date
// replaces the project name.
func (r Renderer) Entry(e domain.TimeEntry, showProject bool, now time.Time) string {
	loc := r.location()
	elapsed := duration.New(r.ManDays, "").Format(EffectiveDuration(e, now))

	running := ""
	if e.Running() {
		running = "* "
	}

	var project string
	switch {
	case e.Project == nil:
		project = " " + NoProject
	case showProject:
		project = " @" + e.Project.Name
	default:
		project = " " + e.Start.In(loc).Format("2006-01-02")
	}

	line := fmt.Sprintf("%s%s%s %s", running, e.Description, project, elapsed)
	if !r.Verbose {
		return line
	}

	layout := r.EntryLayout
	if layout == "" {
		layout = DefaultEntryLayout
	}
	stop := ""
	if e.Stop != nil {
		stop = e.Stop.In(loc).Format(layout)
	}
	return fmt.Sprintf("[%s] %s (%s - %s)", strconv.FormatInt(e.ID, 10), line, e.Start.In(loc).Format(layout), stop)
}

// Render writes rep bucket by bucket.
func (r Renderer) Render(w io.Writer, rep Report) error {
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	totals := duration.New(r.ManDays, " ")

	for _, b := range rep.Buckets {
		title := b.Key
		if rep.Mode == ByProject {
			title = "@" + b.Key
		}
		if _, err := fmt.Fprintln(w, heading.Render(title)); err != nil {
			return err
		}
		if !r.Quiet {
			for _, e := range b.Entries {
				if _, err := fmt.Fprintf(w, "   %s\n", r.Entry(e, rep.Mode == ByDay, rep.Now)); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintf(w, "   (%s)\n", totals.Format(b.Seconds)); err != nil {
			return err
		}
	}
	if r.Sum {
		if _, err := fmt.Fprintf(w, "Total time: %s\n", totals.Format(rep.Total)); err != nil {
			return err
		}
	}
	return nil
}

func (r Renderer) location() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}
