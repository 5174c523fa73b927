package toggl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"toggl-cli/internal/domain"
)

// ListTimeEntries fetches entries in [from, to]. With both bounds zero the
// service returns its recent entries.
// Toggl v9: GET /api/v9/me/time_entries?start_date=...&end_date=...
func (c *Client) ListTimeEntries(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error) {
	path := "/api/v9/me/time_entries"
	if !from.IsZero() || !to.IsZero() {
		q := url.Values{}
		q.Set("start_date", from.UTC().Format(time.RFC3339))
		q.Set("end_date", to.UTC().Format(time.RFC3339))
		path += "?" + q.Encode()
	}
	var raw []rawTimeEntry
	if _, err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	// Map to domain
	out := make([]domain.TimeEntry, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// GetTimeEntry fetches a single entry by id.
func (c *Client) GetTimeEntry(ctx context.Context, id int64) (domain.TimeEntry, error) {
	var r rawTimeEntry
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v9/me/time_entries/%d", id), nil, &r); err != nil {
		return domain.TimeEntry{}, err
	}
	return r.toDomain(), nil
}

// CreateTimeEntry adds an entry; a negative duration starts a running one.
func (c *Client) CreateTimeEntry(ctx context.Context, e domain.TimeEntry) (domain.TimeEntry, error) {
	wid, err := entryWorkspace(e)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	var r rawTimeEntry
	path := fmt.Sprintf("/api/v9/workspaces/%d/time_entries", wid)
	if _, err := c.do(ctx, http.MethodPost, path, entryFromDomain(e), &r); err != nil {
		return domain.TimeEntry{}, err
	}
	return r.toDomain(), nil
}

// UpdateTimeEntry replaces the mutable fields of an existing entry.
func (c *Client) UpdateTimeEntry(ctx context.Context, e domain.TimeEntry) (domain.TimeEntry, error) {
	wid, err := entryWorkspace(e)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	var r rawTimeEntry
	path := fmt.Sprintf("/api/v9/workspaces/%d/time_entries/%d", wid, e.ID)
	if _, err := c.do(ctx, http.MethodPut, path, entryFromDomain(e), &r); err != nil {
		return domain.TimeEntry{}, err
	}
	return r.toDomain(), nil
}

// DeleteTimeEntry removes an entry. A missing entry yields domain.ErrNotFound.
func (c *Client) DeleteTimeEntry(ctx context.Context, workspaceID, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v9/workspaces/%d/time_entries/%d", workspaceID, id), nil, nil)
	return err
}

func entryWorkspace(e domain.TimeEntry) (int64, error) {
	if e.WorkspaceID == nil || *e.WorkspaceID == 0 {
		return 0, errors.New("toggl: time entry has no workspace")
	}
	return *e.WorkspaceID, nil
}
