package toggl

import (
	"time"

	"toggl-cli/internal/domain"
)

// rawTimeEntry mirrors the JSON from Toggl v9.
type rawTimeEntry struct {
	ID          int64      `json:"id,omitempty"`
	Description string     `json:"description"`
	ProjectID   *int64     `json:"project_id"`
	WorkspaceID *int64     `json:"workspace_id"`
	TaskID      *int64     `json:"task_id,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Start       time.Time  `json:"start"`
	Stop        *time.Time `json:"stop"`
	Duration    int64      `json:"duration"`
	CreatedWith string     `json:"created_with,omitempty"`
}

func (r rawTimeEntry) toDomain() domain.TimeEntry {
	return domain.TimeEntry{
		ID:          r.ID,
		Description: r.Description,
		ProjectID:   copyID(r.ProjectID),
		WorkspaceID: copyID(r.WorkspaceID),
		TaskID:      copyID(r.TaskID),
		Tags:        r.Tags,
		Start:       r.Start,
		Stop:        r.Stop,
		DurationSec: r.Duration,
	}
}

func entryFromDomain(e domain.TimeEntry) rawTimeEntry {
	r := rawTimeEntry{
		ID:          e.ID,
		Description: e.Description,
		ProjectID:   copyID(e.ProjectID),
		WorkspaceID: copyID(e.WorkspaceID),
		TaskID:      copyID(e.TaskID),
		Tags:        e.Tags,
		Start:       e.Start.UTC(),
		Duration:    e.DurationSec,
		CreatedWith: createdWith,
	}
	if e.Stop != nil {
		stop := e.Stop.UTC()
		r.Stop = &stop
	}
	return r
}

type rawProject struct {
	ID             int64      `json:"id,omitempty"`
	WorkspaceID    int64      `json:"workspace_id"`
	Name           string     `json:"name"`
	Active         bool       `json:"active"`
	Billable       bool       `json:"billable"`
	Private        bool       `json:"is_private"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	AutoEstimates  bool       `json:"auto_estimates"`
	Color          string     `json:"color,omitempty"`
	ClientID       *int64     `json:"client_id"`
	At             *time.Time `json:"at,omitempty"`
}

func (p rawProject) toDomain() domain.Project {
	var est float64
	if p.EstimatedHours != nil {
		est = *p.EstimatedHours
	}
	var at time.Time
	if p.At != nil {
		at = *p.At
	}
	return domain.Project{
		ID:             p.ID,
		WorkspaceID:    p.WorkspaceID,
		ClientID:       copyID(p.ClientID),
		Name:           p.Name,
		Active:         p.Active,
		Billable:       p.Billable,
		Private:        p.Private,
		EstimatedHours: est,
		AutoEstimates:  p.AutoEstimates,
		Color:          p.Color,
		At:             at,
	}
}

func projectFromDomain(p domain.Project) rawProject {
	r := rawProject{
		ID:            p.ID,
		WorkspaceID:   p.WorkspaceID,
		Name:          p.Name,
		Active:        p.Active,
		Billable:      p.Billable,
		Private:       p.Private,
		AutoEstimates: p.AutoEstimates,
		Color:         p.Color,
		ClientID:      copyID(p.ClientID),
	}
	if p.EstimatedHours > 0 {
		est := p.EstimatedHours
		r.EstimatedHours = &est
	}
	return r
}

type rawWorkspace struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Premium    bool   `json:"premium"`
	BusinessWS bool   `json:"business_ws"`
	Admin      bool   `json:"admin"`
}

func (w rawWorkspace) toDomain() domain.Workspace {
	profile := domain.ProfileFree
	switch {
	case w.BusinessWS:
		profile = domain.ProfileBusiness
	case w.Premium:
		profile = domain.ProfilePro
	}
	return domain.Workspace{ID: w.ID, Name: w.Name, Profile: profile, Admin: w.Admin}
}

type rawClient struct {
	ID          int64   `json:"id,omitempty"`
	WorkspaceID int64   `json:"wid"`
	Name        string  `json:"name"`
	Currency    string  `json:"currency,omitempty"`
	Rate        float64 `json:"rate,omitempty"`
}

func (c rawClient) toDomain() domain.Client {
	return domain.Client{
		ID:          c.ID,
		WorkspaceID: c.WorkspaceID,
		Name:        c.Name,
		Currency:    c.Currency,
		HourlyRate:  c.Rate,
	}
}

func clientFromDomain(c domain.Client) rawClient {
	return rawClient{
		ID:          c.ID,
		WorkspaceID: c.WorkspaceID,
		Name:        c.Name,
		Currency:    c.Currency,
		Rate:        c.HourlyRate,
	}
}

type rawTask struct {
	ID               int64  `json:"id,omitempty"`
	Name             string `json:"name"`
	Active           bool   `json:"active"`
	EstimatedSeconds int64  `json:"estimated_seconds"`
	ProjectID        int64  `json:"project_id"`
	WorkspaceID      int64  `json:"workspace_id"`
	UserID           *int64 `json:"user_id,omitempty"`
}

func (t rawTask) toDomain() domain.Task {
	return domain.Task{
		ID:               t.ID,
		Name:             t.Name,
		Active:           t.Active,
		EstimatedSeconds: t.EstimatedSeconds,
		ProjectID:        t.ProjectID,
		WorkspaceID:      t.WorkspaceID,
		UserID:           copyID(t.UserID),
	}
}

func taskFromDomain(t domain.Task) rawTask {
	return rawTask{
		ID:               t.ID,
		Name:             t.Name,
		Active:           t.Active,
		EstimatedSeconds: t.EstimatedSeconds,
		ProjectID:        t.ProjectID,
		WorkspaceID:      t.WorkspaceID,
		UserID:           copyID(t.UserID),
	}
}

type rawUser struct {
	ID                 int64  `json:"id"`
	Email              string `json:"email"`
	FullName           string `json:"fullname"`
	DefaultWorkspaceID int64  `json:"default_workspace_id"`
}

func (u rawUser) toDomain() domain.User {
	return domain.User{ID: u.ID, Email: u.Email, FullName: u.FullName, DefaultWorkspaceID: u.DefaultWorkspaceID}
}

func copyID(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
