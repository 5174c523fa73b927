package catalog

import (
	"context"
	"fmt"

	"toggl-cli/internal/domain"
	"toggl-cli/internal/resolve"
)

func (c *Catalog) FindProject(ctx context.Context, key string) (domain.Project, error) {
	projects, err := c.Projects(ctx, false)
	if err != nil {
		return domain.Project{}, err
	}
	p, err := resolve.Find(key, projects, c.aliases)
	if err != nil {
		return domain.Project{}, fmt.Errorf("project %w", err)
	}
	return p, nil
}

func (c *Catalog) FindWorkspace(ctx context.Context, key string) (domain.Workspace, error) {
	ws, err := c.Workspaces(ctx, false)
	if err != nil {
		return domain.Workspace{}, err
	}
	w, err := resolve.Find(key, ws, c.aliases)
	if err != nil {
		return domain.Workspace{}, fmt.Errorf("workspace %w", err)
	}
	return w, nil
}

func (c *Catalog) FindClient(ctx context.Context, key string) (domain.Client, error) {
	clients, err := c.Clients(ctx, false)
	if err != nil {
		return domain.Client{}, err
	}
	cl, err := resolve.Find(key, clients, c.aliases)
	if err != nil {
		return domain.Client{}, fmt.Errorf("client %w", err)
	}
	return cl, nil
}

// FindTask searches inactive tasks too.
func (c *Catalog) FindTask(ctx context.Context, key string) (domain.Task, error) {
	tasks, err := c.Tasks(ctx, true)
	if err != nil {
		return domain.Task{}, err
	}
	t, err := resolve.Find(key, tasks, c.aliases)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %w", err)
	}
	return t, nil
}
