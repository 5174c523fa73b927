package usecase

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"toggl-cli/internal/adapter/toggl"
	"toggl-cli/internal/cache"
	"toggl-cli/internal/catalog"
	"toggl-cli/internal/domain"
	"toggl-cli/internal/ports"
)

const (
	workspacesJSON = `[{"id":1,"name":"Personal"},{"id":2,"name":"Acme","premium":true}]`
	clientsJSON    = `[{"id":11,"wid":2,"name":"Globex"}]`
	projectsJSON   = `[{"id":7,"workspace_id":2,"name":"Backend","active":true,"client_id":11},
	                   {"id":8,"workspace_id":1,"name":"Blog","active":false,"client_id":null}]`
)

// fakeToggl keeps entries and tasks in memory and records mutations.
type fakeToggl struct {
	ports.TogglClient
	me      domain.User
	entries []domain.TimeEntry
	tasks   []domain.Task
	users   []domain.User

	listFrom, listTo time.Time
	created          []any
	updated          []any
	deleted          []int64
}

func (f *fakeToggl) Me(context.Context) (domain.User, error) { return f.me, nil }

func (f *fakeToggl) ListTimeEntries(_ context.Context, from, to time.Time) ([]domain.TimeEntry, error) {
	f.listFrom, f.listTo = from, to
	return append([]domain.TimeEntry(nil), f.entries...), nil
}

func (f *fakeToggl) GetTimeEntry(_ context.Context, id int64) (domain.TimeEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.TimeEntry{}, domain.ErrNotFound
}

func (f *fakeToggl) CreateTimeEntry(_ context.Context, e domain.TimeEntry) (domain.TimeEntry, error) {
	e.ID = 1000
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeToggl) UpdateTimeEntry(_ context.Context, e domain.TimeEntry) (domain.TimeEntry, error) {
	f.updated = append(f.updated, e)
	return e, nil
}

func (f *fakeToggl) DeleteTimeEntry(_ context.Context, _, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeToggl) ProjectsRaw(context.Context) ([]byte, error) { return []byte(projectsJSON), nil }
func (f *fakeToggl) WorkspacesRaw(context.Context) ([]byte, error) {
	return []byte(workspacesJSON), nil
}
func (f *fakeToggl) ClientsRaw(context.Context) ([]byte, error) { return []byte(clientsJSON), nil }

func (f *fakeToggl) DecodeProjects(b []byte) ([]domain.Project, error) {
	return toggl.DecodeProjects(b)
}
func (f *fakeToggl) DecodeWorkspaces(b []byte) ([]domain.Workspace, error) {
	return toggl.DecodeWorkspaces(b)
}
func (f *fakeToggl) DecodeClients(b []byte) ([]domain.Client, error) { return toggl.DecodeClients(b) }

func (f *fakeToggl) WorkspaceUsers(context.Context, int64) ([]domain.User, error) {
	return f.users, nil
}

func (f *fakeToggl) CreateProject(_ context.Context, p domain.Project) (domain.Project, error) {
	p.ID = 99
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeToggl) UpdateProject(_ context.Context, p domain.Project) (domain.Project, error) {
	f.updated = append(f.updated, p)
	return p, nil
}

func (f *fakeToggl) CreateClient(_ context.Context, c domain.Client) (domain.Client, error) {
	c.ID = 98
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeToggl) UpdateClient(_ context.Context, c domain.Client) (domain.Client, error) {
	f.updated = append(f.updated, c)
	return c, nil
}

func (f *fakeToggl) DeleteClient(_ context.Context, _, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeToggl) ListTasks(_ context.Context, includeInactive bool) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range f.tasks {
		if t.Active || includeInactive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeToggl) CreateTask(_ context.Context, t domain.Task) (domain.Task, error) {
	t.ID = 97
	f.created = append(f.created, t)
	return t, nil
}

func (f *fakeToggl) UpdateTask(_ context.Context, t domain.Task) (domain.Task, error) {
	f.updated = append(f.updated, t)
	return t, nil
}

func (f *fakeToggl) DeleteTask(_ context.Context, t domain.Task) error {
	f.deleted = append(f.deleted, t.ID)
	return nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newCatalog(t *testing.T, remote ports.TogglClient) (*catalog.Catalog, *cache.Cache) {
	t.Helper()
	c, err := cache.New(filepath.Join(t.TempDir(), "cache"), true, 0, discard())
	require.NoError(t, err)
	return catalog.New(remote, c, nil, discard()), c
}

func ptr[T any](v T) *T { return &v }
