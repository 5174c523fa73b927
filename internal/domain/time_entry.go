package domain

import "time"

// TimeEntry represents a Toggl time entry in the domain.
type TimeEntry struct {
	ID          int64
	Description string
	ProjectID   *int64
	WorkspaceID *int64
	TaskID      *int64
	Tags        []string
	Start       time.Time
	Stop        *time.Time
	DurationSec int64 // Negative means running in Toggl API semantics

	// Project is materialized from ProjectID by the catalog, nil when unset or unknown.
	Project *Project
}

// Running reports whether the entry is still being tracked.
func (e TimeEntry) Running() bool {
	return e.DurationSec < 0
}

// ProjectName returns the linked project's name, or "" when there is none.
func (e TimeEntry) ProjectName() string {
	if e.Project == nil {
		return ""
	}
	return e.Project.Name
}
