package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toggl-cli/internal/domain"
)

type recordingSink struct {
	entries  []domain.TimeEntry
	projects []domain.Project
}

func (s *recordingSink) SyncEntries(_ context.Context, entries []domain.TimeEntry) error {
	s.entries = append(s.entries, entries...)
	return nil
}

func (s *recordingSink) SyncProjects(_ context.Context, projects []domain.Project) error {
	s.projects = append(s.projects, projects...)
	return nil
}

func TestExportRun(t *testing.T) {
	f := &fakeToggl{entries: []domain.TimeEntry{entry(1, "x", nil, testNow, 60)}}
	cat, _ := newCatalog(t, f)
	sink := &recordingSink{}
	uc := &ExportUseCase{Log: discard(), Toggl: f, Catalog: cat, Sink: sink}

	from, to := testNow.Add(-24*time.Hour), testNow
	require.NoError(t, uc.Run(context.Background(), from, to))
	assert.Len(t, sink.entries, 1)
	assert.Len(t, sink.projects, 2)
	assert.Equal(t, from, f.listFrom)
}

func TestExportRun_MissingDependencies(t *testing.T) {
	uc := &ExportUseCase{Log: discard()}
	assert.Error(t, uc.Run(context.Background(), testNow, testNow))
}
