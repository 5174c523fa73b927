package toggl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"toggl-cli/internal/domain"
)

// DefaultBaseURL is the Toggl Track API host.
const DefaultBaseURL = "https://api.track.toggl.com"

const createdWith = "toggl-cli"

// Credentials authenticate against the API. An API token takes precedence
// over username and password.
type Credentials struct {
	APIToken string
	Username string
	Password string
}

// Client implements ports.TogglClient using the Toggl Track API v9.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

func NewClient(baseURL string, creds Credentials, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	h := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	// Basic auth: token:api_token
	if creds.APIToken != "" {
		h.SetBasicAuth(creds.APIToken, "api_token")
	} else {
		h.SetBasicAuth(creds.Username, creds.Password)
	}
	return &Client{http: h, log: log}
}

// do sends one request and returns the raw response body. A 404 maps to
// domain.ErrNotFound; other non-2xx statuses carry a truncated body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("toggl: %s %s: %w", method, path, err)
	}
	c.log.Debug("toggl request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("dur", time.Since(start)),
	)
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("toggl: %s %s: %w", method, path, domain.ErrNotFound)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("toggl: unexpected status %d: %s", resp.StatusCode(), truncate(resp.Body(), 4096))
	}
	raw := resp.Body()
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("toggl: decode %s: %w", path, err)
		}
	}
	return raw, nil
}

// Me returns the authenticated user.
// Toggl v9: GET /api/v9/me
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var r rawUser
	if _, err := c.do(ctx, http.MethodGet, "/api/v9/me", nil, &r); err != nil {
		return domain.User{}, err
	}
	return r.toDomain(), nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
