package toggl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"toggl-cli/internal/domain"
)

// ClientsRaw returns the unparsed client listing.
// Toggl v9: GET /api/v9/me/clients
func (c *Client) ClientsRaw(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/api/v9/me/clients", nil, nil)
}

// DecodeClients parses a client listing as returned by ClientsRaw. The API
// answers null when there are no clients.
func DecodeClients(raw []byte) ([]domain.Client, error) {
	var rs []rawClient
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, fmt.Errorf("toggl: decode clients: %w", err)
	}
	out := make([]domain.Client, 0, len(rs))
	for _, cl := range rs {
		out = append(out, cl.toDomain())
	}
	return out, nil
}

func (c *Client) DecodeClients(raw []byte) ([]domain.Client, error) { return DecodeClients(raw) }

func (c *Client) CreateClient(ctx context.Context, cl domain.Client) (domain.Client, error) {
	var r rawClient
	path := fmt.Sprintf("/api/v9/workspaces/%d/clients", cl.WorkspaceID)
	if _, err := c.do(ctx, http.MethodPost, path, clientFromDomain(cl), &r); err != nil {
		return domain.Client{}, err
	}
	return r.toDomain(), nil
}

func (c *Client) UpdateClient(ctx context.Context, cl domain.Client) (domain.Client, error) {
	var r rawClient
	path := fmt.Sprintf("/api/v9/workspaces/%d/clients/%d", cl.WorkspaceID, cl.ID)
	if _, err := c.do(ctx, http.MethodPut, path, clientFromDomain(cl), &r); err != nil {
		return domain.Client{}, err
	}
	return r.toDomain(), nil
}

func (c *Client) DeleteClient(ctx context.Context, workspaceID, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v9/workspaces/%d/clients/%d", workspaceID, id), nil, nil)
	return err
}
