package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toggl-cli/internal/adapter/toggl"
	"toggl-cli/internal/cache"
	"toggl-cli/internal/domain"
	"toggl-cli/internal/ports"
	"toggl-cli/internal/resolve"
)

const (
	workspacesJSON = `[{"id":1,"name":"Personal"},{"id":2,"name":"Acme","premium":true}]`
	clientsJSON    = `[{"id":11,"wid":2,"name":"Globex"}]`
	projectsJSON   = `[{"id":7,"workspace_id":2,"name":"Backend","active":true,"client_id":11},
	                   {"id":8,"workspace_id":1,"name":"Blog","active":false,"client_id":null}]`
)

// fakeRemote serves canned payloads and counts listing calls. Methods the
// tests do not need panic through the embedded nil interface.
type fakeRemote struct {
	ports.TogglClient
	calls map[string]int
	fail  error
	tasks []domain.Task
}

func newFake() *fakeRemote { return &fakeRemote{calls: map[string]int{}} }

func (f *fakeRemote) payload(kind, body string) ([]byte, error) {
	f.calls[kind]++
	if f.fail != nil {
		return nil, f.fail
	}
	return []byte(body), nil
}

func (f *fakeRemote) ProjectsRaw(context.Context) ([]byte, error) {
	return f.payload("projects", projectsJSON)
}
func (f *fakeRemote) WorkspacesRaw(context.Context) ([]byte, error) {
	return f.payload("workspaces", workspacesJSON)
}
func (f *fakeRemote) ClientsRaw(context.Context) ([]byte, error) {
	return f.payload("clients", clientsJSON)
}
func (f *fakeRemote) DecodeProjects(b []byte) ([]domain.Project, error) {
	return toggl.DecodeProjects(b)
}
func (f *fakeRemote) DecodeWorkspaces(b []byte) ([]domain.Workspace, error) {
	return toggl.DecodeWorkspaces(b)
}
func (f *fakeRemote) DecodeClients(b []byte) ([]domain.Client, error) { return toggl.DecodeClients(b) }
func (f *fakeRemote) ListTasks(_ context.Context, includeInactive bool) ([]domain.Task, error) {
	f.calls["tasks"]++
	var out []domain.Task
	for _, t := range f.tasks {
		if t.Active || includeInactive {
			out = append(out, t)
		}
	}
	return out, nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newCatalog(t *testing.T, remote *fakeRemote, enabled bool, aliases resolve.Aliases) (*Catalog, *cache.Cache) {
	t.Helper()
	c, err := cache.New(filepath.Join(t.TempDir(), "cache"), enabled, 0, discard())
	require.NoError(t, err)
	return New(remote, c, aliases, discard()), c
}

func TestProjects_LinksWorkspaceAndClient(t *testing.T) {
	cat, _ := newCatalog(t, newFake(), false, nil)

	projects, err := cat.Projects(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	require.NotNil(t, projects[0].Workspace)
	assert.Equal(t, "Acme", projects[0].Workspace.Name)
	assert.Equal(t, domain.ProfilePro, projects[0].Workspace.Profile)
	require.NotNil(t, projects[0].Client)
	assert.Equal(t, "Globex", projects[0].Client.Name)
	require.NotNil(t, projects[0].Client.Workspace)

	assert.Equal(t, "Personal", projects[1].Workspace.Name)
	assert.Nil(t, projects[1].Client)
}

func TestProjects_CacheMissPopulatesThenHits(t *testing.T) {
	remote := newFake()
	cat, c := newCatalog(t, remote, true, nil)
	ctx := context.Background()

	_, err := cat.Projects(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, remote.calls["projects"])
	assert.JSONEq(t, projectsJSON, string(c.Read(cache.Projects)))

	_, err = cat.Projects(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, remote.calls["projects"], "second read is served from disk")
	assert.Equal(t, 1, remote.calls["workspaces"])
}

func TestProjects_RefreshBypassesCache(t *testing.T) {
	remote := newFake()
	cat, c := newCatalog(t, remote, true, nil)
	c.Write(cache.Projects, []byte(`[{"id":99,"workspace_id":1,"name":"Stale"}]`))

	projects, err := cat.Projects(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "Backend", projects[0].Name)
	assert.Equal(t, 1, remote.calls["projects"])
	assert.JSONEq(t, projectsJSON, string(c.Read(cache.Projects)))
}

func TestProjects_DisabledCacheAlwaysFetches(t *testing.T) {
	remote := newFake()
	cat, _ := newCatalog(t, remote, false, nil)

	for i := 0; i < 2; i++ {
		_, err := cat.Projects(context.Background(), false)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, remote.calls["projects"])
}

func TestProjects_FetchError(t *testing.T) {
	remote := newFake()
	remote.fail = errors.New("boom")
	cat, _ := newCatalog(t, remote, true, nil)

	_, err := cat.Projects(context.Background(), false)
	assert.ErrorContains(t, err, "boom")
}

func TestFindProject(t *testing.T) {
	cat, _ := newCatalog(t, newFake(), false, resolve.Aliases{"@blog": "Blog"})
	ctx := context.Background()

	p, err := cat.FindProject(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)

	p, err = cat.FindProject(ctx, "@blog")
	require.NoError(t, err)
	assert.Equal(t, int64(8), p.ID)

	_, err = cat.FindProject(ctx, "Nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "project")
}

func TestFindWorkspaceAndClient(t *testing.T) {
	cat, _ := newCatalog(t, newFake(), false, nil)
	ctx := context.Background()

	w, err := cat.FindWorkspace(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Acme", w.Name)

	cl, err := cat.FindClient(ctx, "Glo")
	require.NoError(t, err)
	assert.Equal(t, int64(11), cl.ID)
	assert.Equal(t, "Acme", cl.Workspace.Name)
}

func TestTasks(t *testing.T) {
	remote := newFake()
	remote.tasks = []domain.Task{
		{ID: 5, Name: "Review", Active: true, ProjectID: 7, WorkspaceID: 2},
		{ID: 6, Name: "Retro", Active: false, ProjectID: 8, WorkspaceID: 1},
	}
	cat, _ := newCatalog(t, remote, false, nil)
	ctx := context.Background()

	active, err := cat.Tasks(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Backend", active[0].Project.Name)
	assert.Equal(t, "Acme", active[0].Workspace.Name)

	task, err := cat.FindTask(ctx, "Ret")
	require.NoError(t, err)
	assert.Equal(t, int64(6), task.ID)
}

func TestAttachProjects(t *testing.T) {
	cat, _ := newCatalog(t, newFake(), false, nil)
	pid, missing := int64(7), int64(404)
	entries := []domain.TimeEntry{
		{ID: 1, ProjectID: &pid, Start: time.Now()},
		{ID: 2},
		{ID: 3, ProjectID: &missing},
	}

	out, err := cat.AttachProjects(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, "Backend", out[0].ProjectName())
	assert.Nil(t, out[1].Project)
	assert.Nil(t, out[2].Project)
}

func TestRefreshAll(t *testing.T) {
	remote := newFake()
	cat, c := newCatalog(t, remote, true, nil)

	require.NoError(t, cat.RefreshAll(context.Background()))
	for _, k := range cache.Kinds {
		assert.NotNil(t, c.Read(k), k)
	}

	disabled, _ := newCatalog(t, newFake(), false, nil)
	assert.ErrorIs(t, disabled.RefreshAll(context.Background()), domain.ErrCacheDisabled)
}

func TestInvalidate(t *testing.T) {
	remote := newFake()
	cat, c := newCatalog(t, remote, true, nil)
	ctx := context.Background()

	_, err := cat.Workspaces(ctx, false)
	require.NoError(t, err)
	cat.Invalidate(cache.Workspaces)
	assert.Nil(t, c.Read(cache.Workspaces))

	_, err = cat.Workspaces(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, remote.calls["workspaces"])
}
