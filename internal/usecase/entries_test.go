package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toggl-cli/internal/domain"
)

// Wednesday.
var testNow = time.Date(2025, 8, 6, 10, 0, 0, 0, time.UTC)

func newEntries(t *testing.T, f *fakeToggl) *EntriesUseCase {
	t.Helper()
	cat, _ := newCatalog(t, f)
	return &EntriesUseCase{
		Log:      discard(),
		Toggl:    f,
		Catalog:  cat,
		Location: time.UTC,
		Now:      func() time.Time { return testNow },
	}
}

func entry(id int64, desc string, project *int64, start time.Time, secs int64) domain.TimeEntry {
	e := domain.TimeEntry{ID: id, Description: desc, ProjectID: project, WorkspaceID: ptr(int64(2)), Start: start, DurationSec: secs}
	if secs >= 0 {
		stop := start.Add(time.Duration(secs) * time.Second)
		e.Stop = &stop
	}
	return e
}

func TestEntriesList_DefaultsToCurrentWeek(t *testing.T) {
	f := &fakeToggl{entries: []domain.TimeEntry{
		entry(1, "code", ptr(int64(7)), time.Date(2025, 8, 4, 9, 0, 0, 0, time.UTC), 3600),
		entry(2, "write", nil, time.Date(2025, 8, 5, 9, 0, 0, 0, time.UTC), 1800),
		entry(3, "code more", ptr(int64(7)), time.Date(2025, 8, 5, 13, 0, 0, 0, time.UTC), 600),
	}}
	uc := newEntries(t, f)

	rep, err := uc.List(context.Background(), ListParams{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC), f.listFrom)
	assert.Equal(t, time.Date(2025, 8, 6, 23, 59, 59, 0, time.UTC), f.listTo)
	require.Len(t, rep.Buckets, 2)
	assert.Equal(t, int64(3600), rep.Buckets[0].Seconds)
	assert.Equal(t, int64(2400), rep.Buckets[1].Seconds)
	assert.Equal(t, int64(6000), rep.Total)
	require.NotNil(t, rep.Buckets[0].Entries[0].Project)
	assert.Equal(t, "Backend", rep.Buckets[0].Entries[0].Project.Name)
}

func TestEntriesList_GrepAndByProject(t *testing.T) {
	f := &fakeToggl{entries: []domain.TimeEntry{
		entry(1, "code", ptr(int64(7)), time.Date(2025, 8, 4, 9, 0, 0, 0, time.UTC), 3600),
		entry(2, "write", nil, time.Date(2025, 8, 5, 9, 0, 0, 0, time.UTC), 1800),
		entry(3, "code more", nil, time.Date(2025, 8, 5, 13, 0, 0, 0, time.UTC), 600),
	}}
	uc := newEntries(t, f)

	rep, err := uc.List(context.Background(), ListParams{Grep: "^code", ByProject: true})
	require.NoError(t, err)
	require.Len(t, rep.Buckets, 2)
	assert.Equal(t, "Backend", rep.Buckets[0].Key)
	assert.Equal(t, "(No Project)", rep.Buckets[1].Key)
	assert.Equal(t, int64(4200), rep.Total)
}

func TestEntriesList_BadInput(t *testing.T) {
	uc := newEntries(t, &fakeToggl{})
	_, err := uc.List(context.Background(), ListParams{Grep: "("})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(context.Background(), ListParams{Start: "yesterday-ish"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEntriesCurrent(t *testing.T) {
	f := &fakeToggl{}
	uc := newEntries(t, f)
	_, err := uc.Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoRunningEntry)

	f.entries = []domain.TimeEntry{
		entry(1, "done", nil, testNow.Add(-2*time.Hour), 600),
		entry(2, "busy", ptr(int64(7)), testNow.Add(-30*time.Minute), -1),
	}
	cur, err := uc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), cur.ID)
	require.NotNil(t, cur.Project)
	assert.Equal(t, "Backend", cur.Project.Name)
}

func TestEntriesAdd_DurationDerivesEnd(t *testing.T) {
	f := &fakeToggl{}
	uc := newEntries(t, f)

	e, err := uc.Add(context.Background(), AddParams{
		Description: "pairing",
		Project:     "Backend",
		Start:       "2025-08-06 09:00",
		Duration:    "1:30:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5400), e.DurationSec)
	require.NotNil(t, e.Stop)
	assert.Equal(t, time.Date(2025, 8, 6, 10, 30, 0, 0, time.UTC), *e.Stop)
	assert.Equal(t, int64(2), *e.WorkspaceID)
	assert.Equal(t, int64(7), *e.ProjectID)
}

func TestEntriesAdd_StartEndWithoutProjectUsesDefaultWorkspace(t *testing.T) {
	f := &fakeToggl{me: domain.User{ID: 1, DefaultWorkspaceID: 1}}
	uc := newEntries(t, f)

	e, err := uc.Add(context.Background(), AddParams{Description: "admin", Start: "09:00", End: "10:15"})
	require.NoError(t, err)
	assert.Equal(t, int64(4500), e.DurationSec)
	assert.Equal(t, int64(1), *e.WorkspaceID)
	assert.Nil(t, e.ProjectID)
}

func TestEntriesAdd_Errors(t *testing.T) {
	uc := newEntries(t, &fakeToggl{})
	_, err := uc.Add(context.Background(), AddParams{Description: "x", Start: "10:00", End: "09:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add(context.Background(), AddParams{Description: "x", Project: "Nope", Duration: "10"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntriesEdit(t *testing.T) {
	f := &fakeToggl{entries: []domain.TimeEntry{
		entry(5, "draft", nil, time.Date(2025, 8, 5, 9, 0, 0, 0, time.UTC), 600),
	}}
	uc := newEntries(t, f)

	e, err := uc.Edit(context.Background(), EditParams{
		ID:           5,
		Description:  ptr("final"),
		Project:      ptr("Backend"),
		End:          ptr("2025-08-05 10:00"),
		CalcDuration: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "final", e.Description)
	assert.Equal(t, int64(3600), e.DurationSec)
	assert.Equal(t, int64(7), *e.ProjectID)

	_, err = uc.Edit(context.Background(), EditParams{ID: 404})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntriesStartStop(t *testing.T) {
	f := &fakeToggl{me: domain.User{DefaultWorkspaceID: 1}}
	uc := newEntries(t, f)

	started, err := uc.Start(context.Background(), "focus", "", "09:45")
	require.NoError(t, err)
	assert.True(t, started.Running())
	assert.Equal(t, time.Date(2025, 8, 6, 9, 45, 0, 0, time.UTC), started.Start)

	f.entries = []domain.TimeEntry{started}
	stopped, err := uc.Stop(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(900), stopped.DurationSec)
	require.NotNil(t, stopped.Stop)
	assert.Equal(t, testNow, *stopped.Stop)

	_, err = uc.Stop(context.Background(), "09:00")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEntriesDelete(t *testing.T) {
	f := &fakeToggl{entries: []domain.TimeEntry{entry(5, "x", nil, testNow, 60)}}
	uc := newEntries(t, f)

	require.NoError(t, uc.Delete(context.Background(), 5))
	assert.Equal(t, []int64{5}, f.deleted)
	assert.ErrorIs(t, uc.Delete(context.Background(), 6), domain.ErrNotFound)
}
