package toggl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"toggl-cli/internal/domain"
)

// ProjectsRaw returns the unparsed project listing, archived projects included.
// Toggl v9: GET /api/v9/me/projects
func (c *Client) ProjectsRaw(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/api/v9/me/projects?include_archived=true", nil, nil)
}

// DecodeProjects parses a project listing as returned by ProjectsRaw.
func DecodeProjects(raw []byte) ([]domain.Project, error) {
	var rs []rawProject
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, fmt.Errorf("toggl: decode projects: %w", err)
	}
	out := make([]domain.Project, 0, len(rs))
	for _, p := range rs {
		out = append(out, p.toDomain())
	}
	return out, nil
}

func (c *Client) DecodeProjects(raw []byte) ([]domain.Project, error) { return DecodeProjects(raw) }

// CreateProject adds a project to p.WorkspaceID.
func (c *Client) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	var r rawProject
	path := fmt.Sprintf("/api/v9/workspaces/%d/projects", p.WorkspaceID)
	if _, err := c.do(ctx, http.MethodPost, path, projectFromDomain(p), &r); err != nil {
		return domain.Project{}, err
	}
	return r.toDomain(), nil
}

// UpdateProject saves p. Archiving is an update with Active false.
func (c *Client) UpdateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	var r rawProject
	path := fmt.Sprintf("/api/v9/workspaces/%d/projects/%d", p.WorkspaceID, p.ID)
	if _, err := c.do(ctx, http.MethodPut, path, projectFromDomain(p), &r); err != nil {
		return domain.Project{}, err
	}
	return r.toDomain(), nil
}
