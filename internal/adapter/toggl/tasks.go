package toggl

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"toggl-cli/internal/domain"
)

// ListTasks returns the user's tasks, inactive ones only when requested.
// Toggl v9: GET /api/v9/me/tasks
func (c *Client) ListTasks(ctx context.Context, includeInactive bool) ([]domain.Task, error) {
	var rs []rawTask
	path := "/api/v9/me/tasks?include_inactive=" + strconv.FormatBool(includeInactive)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &rs); err != nil {
		return nil, err
	}
	out := make([]domain.Task, 0, len(rs))
	for _, t := range rs {
		out = append(out, t.toDomain())
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	var r rawTask
	path := fmt.Sprintf("/api/v9/workspaces/%d/projects/%d/tasks", t.WorkspaceID, t.ProjectID)
	if _, err := c.do(ctx, http.MethodPost, path, taskFromDomain(t), &r); err != nil {
		return domain.Task{}, err
	}
	return r.toDomain(), nil
}

func (c *Client) UpdateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	var r rawTask
	path := fmt.Sprintf("/api/v9/workspaces/%d/projects/%d/tasks/%d", t.WorkspaceID, t.ProjectID, t.ID)
	if _, err := c.do(ctx, http.MethodPut, path, taskFromDomain(t), &r); err != nil {
		return domain.Task{}, err
	}
	return r.toDomain(), nil
}

func (c *Client) DeleteTask(ctx context.Context, t domain.Task) error {
	path := fmt.Sprintf("/api/v9/workspaces/%d/projects/%d/tasks/%d", t.WorkspaceID, t.ProjectID, t.ID)
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}
