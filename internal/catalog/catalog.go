// Package catalog serves projects, workspaces, clients and tasks from the
// local cache or the remote service, links their foreign keys into nested
// objects and resolves user supplied keys against them.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"toggl-cli/internal/cache"
	"toggl-cli/internal/domain"
	"toggl-cli/internal/ports"
	"toggl-cli/internal/resolve"
)

type Catalog struct {
	remote  ports.TogglClient
	cache   *cache.Cache
	aliases resolve.Aliases
	log     *slog.Logger
}

func New(remote ports.TogglClient, c *cache.Cache, aliases resolve.Aliases, log *slog.Logger) *Catalog {
	return &Catalog{remote: remote, cache: c, aliases: aliases, log: log}
}

// Aliases returns the alias table keys are resolved with.
func (c *Catalog) Aliases() resolve.Aliases { return c.aliases }

// raw serves kind from the cache unless refresh is set, falling back to fetch.
// Live payloads are written back whenever the cache is enabled.
func (c *Catalog) raw(ctx context.Context, kind cache.Kind, refresh bool, fetch func(context.Context) ([]byte, error)) ([]byte, error) {
	enabled := c.cache != nil && c.cache.Enabled()
	if enabled && !refresh {
		if data := c.cache.Read(kind); data != nil {
			c.log.Debug("cache hit", slog.String("kind", string(kind)))
			return data, nil
		}
	}
	data, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", kind, err)
	}
	if enabled {
		c.cache.Write(kind, data)
	}
	return data, nil
}

// Workspaces lists the user's workspaces.
func (c *Catalog) Workspaces(ctx context.Context, refresh bool) ([]domain.Workspace, error) {
	data, err := c.raw(ctx, cache.Workspaces, refresh, c.remote.WorkspacesRaw)
	if err != nil {
		return nil, err
	}
	return c.remote.DecodeWorkspaces(data)
}

// Clients lists clients with their workspace attached.
func (c *Catalog) Clients(ctx context.Context, refresh bool) ([]domain.Client, error) {
	ws, err := c.Workspaces(ctx, false)
	if err != nil {
		return nil, err
	}
	return c.clients(ctx, refresh, ws)
}

func (c *Catalog) clients(ctx context.Context, refresh bool, ws []domain.Workspace) ([]domain.Client, error) {
	data, err := c.raw(ctx, cache.Clients, refresh, c.remote.ClientsRaw)
	if err != nil {
		return nil, err
	}
	clients, err := c.remote.DecodeClients(data)
	if err != nil {
		return nil, err
	}
	wsByID := index(ws)
	for i := range clients {
		clients[i].Workspace = wsByID[clients[i].WorkspaceID]
	}
	return clients, nil
}

// Projects lists projects, archived ones included, with workspace and client
// attached.
func (c *Catalog) Projects(ctx context.Context, refresh bool) ([]domain.Project, error) {
	data, err := c.raw(ctx, cache.Projects, refresh, c.remote.ProjectsRaw)
	if err != nil {
		return nil, err
	}
	projects, err := c.remote.DecodeProjects(data)
	if err != nil {
		return nil, err
	}
	ws, err := c.Workspaces(ctx, false)
	if err != nil {
		return nil, err
	}
	clients, err := c.clients(ctx, false, ws)
	if err != nil {
		return nil, err
	}
	wsByID, clientByID := index(ws), index(clients)
	for i := range projects {
		projects[i].Workspace = wsByID[projects[i].WorkspaceID]
		if projects[i].ClientID != nil {
			projects[i].Client = clientByID[*projects[i].ClientID]
		}
	}
	return projects, nil
}

// Tasks lists tasks with project and workspace attached.
func (c *Catalog) Tasks(ctx context.Context, includeInactive bool) ([]domain.Task, error) {
	tasks, err := c.remote.ListTasks(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	projects, err := c.Projects(ctx, false)
	if err != nil {
		return nil, err
	}
	projectByID := index(projects)
	for i := range tasks {
		if p := projectByID[tasks[i].ProjectID]; p != nil {
			tasks[i].Project = p
			tasks[i].Workspace = p.Workspace
		}
	}
	return tasks, nil
}

// AttachProjects sets Project on every entry whose project id is known.
func (c *Catalog) AttachProjects(ctx context.Context, entries []domain.TimeEntry) ([]domain.TimeEntry, error) {
	if len(entries) == 0 {
		return entries, nil
	}
	projects, err := c.Projects(ctx, false)
	if err != nil {
		return nil, err
	}
	projectByID := index(projects)
	for i := range entries {
		if entries[i].ProjectID != nil {
			entries[i].Project = projectByID[*entries[i].ProjectID]
		}
	}
	return entries, nil
}

// RefreshAll rewrites every cached kind from the remote service.
func (c *Catalog) RefreshAll(ctx context.Context) error {
	if c.cache == nil || !c.cache.Enabled() {
		return domain.ErrCacheDisabled
	}
	fetchers := map[cache.Kind]func(context.Context) ([]byte, error){
		cache.Projects:   c.remote.ProjectsRaw,
		cache.Workspaces: c.remote.WorkspacesRaw,
		cache.Clients:    c.remote.ClientsRaw,
	}
	for _, kind := range cache.Kinds {
		if _, err := c.raw(ctx, kind, true, fetchers[kind]); err != nil {
			return err
		}
	}
	return nil
}

type identified interface {
	domain.Project | domain.Workspace | domain.Client
	EntityID() int64
}

func index[E identified](items []E) map[int64]*E {
	m := make(map[int64]*E, len(items))
	for i := range items {
		m[items[i].EntityID()] = &items[i]
	}
	return m
}

// Invalidate empties the cached payload for kind so the next read goes live.
func (c *Catalog) Invalidate(kind cache.Kind) {
	if c.cache != nil && c.cache.Enabled() {
		c.cache.Write(kind, nil)
	}
}
