package ports

import (
	"context"
	"time"

	"toggl-cli/internal/domain"
)

// TogglClient is the remote time tracking service. Listings of cacheable
// kinds come back as raw payloads so they can be stored verbatim.
type TogglClient interface {
	Me(ctx context.Context) (domain.User, error)

	ListTimeEntries(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error)
	GetTimeEntry(ctx context.Context, id int64) (domain.TimeEntry, error)
	CreateTimeEntry(ctx context.Context, e domain.TimeEntry) (domain.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, e domain.TimeEntry) (domain.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, workspaceID, id int64) error

	ProjectsRaw(ctx context.Context) ([]byte, error)
	DecodeProjects(raw []byte) ([]domain.Project, error)
	CreateProject(ctx context.Context, p domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, p domain.Project) (domain.Project, error)

	WorkspacesRaw(ctx context.Context) ([]byte, error)
	DecodeWorkspaces(raw []byte) ([]domain.Workspace, error)
	WorkspaceUsers(ctx context.Context, workspaceID int64) ([]domain.User, error)

	ClientsRaw(ctx context.Context) ([]byte, error)
	DecodeClients(raw []byte) ([]domain.Client, error)
	CreateClient(ctx context.Context, c domain.Client) (domain.Client, error)
	UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error)
	DeleteClient(ctx context.Context, workspaceID, id int64) error

	ListTasks(ctx context.Context, includeInactive bool) ([]domain.Task, error)
	CreateTask(ctx context.Context, t domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, t domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, t domain.Task) error
}

// Sink receives entries and persists them to a target system.
// The export command writes to MySQL, but the interface is generic.
type Sink interface {
	SyncEntries(ctx context.Context, entries []domain.TimeEntry) error
	SyncProjects(ctx context.Context, projects []domain.Project) error
}
