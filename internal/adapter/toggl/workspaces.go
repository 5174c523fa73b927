package toggl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"toggl-cli/internal/domain"
)

// WorkspacesRaw returns the unparsed workspace listing.
// Toggl v9: GET /api/v9/me/workspaces
func (c *Client) WorkspacesRaw(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/api/v9/me/workspaces", nil, nil)
}

// DecodeWorkspaces parses a workspace listing as returned by WorkspacesRaw.
func DecodeWorkspaces(raw []byte) ([]domain.Workspace, error) {
	var rs []rawWorkspace
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, fmt.Errorf("toggl: decode workspaces: %w", err)
	}
	out := make([]domain.Workspace, 0, len(rs))
	for _, w := range rs {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) DecodeWorkspaces(raw []byte) ([]domain.Workspace, error) {
	return DecodeWorkspaces(raw)
}

// WorkspaceUsers lists the members of a workspace.
func (c *Client) WorkspaceUsers(ctx context.Context, workspaceID int64) ([]domain.User, error) {
	var rs []rawUser
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v9/workspaces/%d/users", workspaceID), nil, &rs); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rs))
	for _, u := range rs {
		out = append(out, u.toDomain())
	}
	return out, nil
}
