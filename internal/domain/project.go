package domain

import "time"

// Project represents a Toggl project in the domain layer.
type Project struct {
	ID             int64
	WorkspaceID    int64
	ClientID       *int64
	Name           string
	Active         bool
	Billable       bool
	Private        bool
	EstimatedHours float64
	AutoEstimates  bool
	Color          string
	At             time.Time // Last update timestamp from Toggl

	Workspace *Workspace
	Client    *Client
}

func (p Project) EntityID() int64    { return p.ID }
func (p Project) EntityName() string { return p.Name }
