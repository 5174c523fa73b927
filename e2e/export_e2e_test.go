//go:build e2e

package e2e

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	msql "toggl-cli/internal/adapter/mysql"
	"toggl-cli/internal/adapter/toggl"
	"toggl-cli/internal/cache"
	"toggl-cli/internal/catalog"
	"toggl-cli/internal/domain"
	"toggl-cli/internal/migrate"
	"toggl-cli/internal/ports"
	"toggl-cli/internal/usecase"
)

const projectsJSON = `[{"id":123,"workspace_id":456,"name":"Backend","active":true,"billable":true,"client_id":null}]`

type fakeToggl struct {
	ports.TogglClient
	entries []domain.TimeEntry
}

func (f fakeToggl) ListTimeEntries(context.Context, time.Time, time.Time) ([]domain.TimeEntry, error) {
	return f.entries, nil
}
func (f fakeToggl) ProjectsRaw(context.Context) ([]byte, error) { return []byte(projectsJSON), nil }
func (f fakeToggl) WorkspacesRaw(context.Context) ([]byte, error) {
	return []byte(`[{"id":456,"name":"Acme"}]`), nil
}
func (f fakeToggl) ClientsRaw(context.Context) ([]byte, error) { return []byte(`[]`), nil }
func (f fakeToggl) DecodeProjects(b []byte) ([]domain.Project, error) {
	return toggl.DecodeProjects(b)
}
func (f fakeToggl) DecodeWorkspaces(b []byte) ([]domain.Workspace, error) {
	return toggl.DecodeWorkspaces(b)
}
func (f fakeToggl) DecodeClients(b []byte) ([]domain.Client, error) { return toggl.DecodeClients(b) }

func startMySQL(t *testing.T, ctx context.Context) string {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8.0",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_DATABASE":      "toggl",
			"MYSQL_ROOT_PASSWORD": "secret",
			"MYSQL_USER":          "test",
			"MYSQL_PASSWORD":      "pass",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(120 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start mysql container")
	t.Cleanup(func() { _ = mysqlC.Terminate(context.Background()) })

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("test:pass@tcp(%s:%s)/toggl?parseTime=true&multiStatements=true", host, port.Port())
}

func TestExportToMySQL_UpsertsEntriesAndProjects(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	ctx := context.Background()
	dsn := startMySQL(t, ctx)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	require.NoError(t, migrate.Run(ctx, dsn, logger))
	// Applying twice is a no-op.
	require.NoError(t, migrate.Run(ctx, dsn, logger))

	sink, err := msql.Open(ctx, dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })

	start := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	stop := start.Add(90 * time.Minute)
	projectID, workspaceID, taskID := int64(123), int64(456), int64(789)
	fake := fakeToggl{entries: []domain.TimeEntry{
		{ID: 1, Description: "Dev work", ProjectID: &projectID, WorkspaceID: &workspaceID, TaskID: &taskID, Tags: []string{"dev"}, Start: start, Stop: &stop, DurationSec: 5400},
		{ID: 2, Description: "Meeting", WorkspaceID: &workspaceID, Tags: []string{"meeting"}, Start: start.Add(2 * time.Hour), Stop: &stop, DurationSec: 3600},
		{ID: 3, Description: "Running", WorkspaceID: &workspaceID, Start: start.Add(3 * time.Hour), DurationSec: -1},
	}}

	c, err := cache.New(filepath.Join(t.TempDir(), "cache"), false, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	uc := &usecase.ExportUseCase{
		Log:     logger,
		Toggl:   fake,
		Catalog: catalog.New(fake, c, nil, logger),
		Sink:    sink,
	}
	require.NoError(t, uc.Run(ctx, start.Add(-time.Hour), start.Add(4*time.Hour)))

	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	defer db.Close()

	count := func(table string) int {
		var n int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n))
		return n
	}
	assert.Equal(t, 3, count("toggl_time_entries"))
	assert.Equal(t, 1, count("toggl_projects"))

	var gotTask sql.NullInt64
	var gotStop sql.NullTime
	require.NoError(t, db.QueryRowContext(ctx, "SELECT task_id, stop FROM toggl_time_entries WHERE id = 3").Scan(&gotTask, &gotStop))
	assert.False(t, gotTask.Valid)
	assert.False(t, gotStop.Valid)

	// Idempotent upsert.
	require.NoError(t, uc.Run(ctx, start.Add(-time.Hour), start.Add(4*time.Hour)))
	assert.Equal(t, 3, count("toggl_time_entries"))
	assert.Equal(t, 1, count("toggl_projects"))
}
