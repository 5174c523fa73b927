package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"toggl-cli/internal/catalog"
	"toggl-cli/internal/domain"
	"toggl-cli/internal/duration"
	"toggl-cli/internal/ports"
	"toggl-cli/internal/report"
	"toggl-cli/internal/timeparse"
)

// EntriesUseCase lists and edits time entries.
type EntriesUseCase struct {
	Log              *slog.Logger
	Toggl            ports.TogglClient
	Catalog          *catalog.Catalog
	Location         *time.Location
	DayLayout        string
	DefaultWorkspace string
	Now              func() time.Time
}

// ListParams selects and groups entries. Empty bounds default to Monday
// 00:00 of the current week and the end of today.
type ListParams struct {
	Start     string
	End       string
	Grep      string
	ByProject bool
}

// AddParams describes a completed entry. Duration is [[H:]M:]S.
type AddParams struct {
	Description string
	Project     string
	Start       string
	End         string
	Duration    string
}

// EditParams changes an existing entry; nil fields are left alone.
type EditParams struct {
	ID           int64
	Description  *string
	Project      *string
	Start        *string
	End          *string
	Duration     *string
	CalcDuration bool
}

func (uc *EntriesUseCase) now() time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return time.Now()
}

func (uc *EntriesUseCase) location() *time.Location {
	if uc.Location == nil {
		return time.UTC
	}
	return uc.Location
}

func (uc *EntriesUseCase) parse(val string, now time.Time) (time.Time, error) {
	return timeparse.Parse(val, uc.location(), now)
}

// List fetches entries in range and aggregates them.
func (uc *EntriesUseCase) List(ctx context.Context, p ListParams) (report.Report, error) {
	now := uc.now()
	var filter *regexp.Regexp
	if p.Grep != "" {
		re, err := regexp.Compile(p.Grep)
		if err != nil {
			return report.Report{}, fmt.Errorf("%w: grep pattern: %v", domain.ErrInvalidInput, err)
		}
		filter = re
	}

	local := now.In(uc.location())
	from := timeparse.WeekStart(local)
	to := timeparse.DayEnd(local)
	var err error
	if p.Start != "" {
		if from, err = uc.parse(p.Start, now); err != nil {
			return report.Report{}, err
		}
	}
	if p.End != "" {
		if to, err = uc.parse(p.End, now); err != nil {
			return report.Report{}, err
		}
	}

	uc.Log.Debug("fetching time entries", slog.Time("from", from), slog.Time("to", to))
	entries, err := uc.Toggl.ListTimeEntries(ctx, from, to)
	if err != nil {
		return report.Report{}, err
	}
	if entries, err = uc.Catalog.AttachProjects(ctx, entries); err != nil {
		return report.Report{}, err
	}

	mode := report.ByDay
	if p.ByProject {
		mode = report.ByProject
	}
	return report.Aggregate(entries, report.Options{
		Mode:      mode,
		Filter:    filter,
		Location:  uc.location(),
		DayLayout: uc.DayLayout,
		Now:       now,
	}), nil
}

// Current returns the running entry among the recent ones.
func (uc *EntriesUseCase) Current(ctx context.Context) (domain.TimeEntry, error) {
	entries, err := uc.Toggl.ListTimeEntries(ctx, time.Time{}, time.Time{})
	if err != nil {
		return domain.TimeEntry{}, err
	}
	e, ok := report.Running(entries)
	if !ok {
		return domain.TimeEntry{}, domain.ErrNoRunningEntry
	}
	linked, err := uc.Catalog.AttachProjects(ctx, []domain.TimeEntry{e})
	if err != nil {
		return domain.TimeEntry{}, err
	}
	return linked[0], nil
}

// Add creates a completed entry. With a duration the missing bound is derived
// from it; otherwise the duration is end minus start.
func (uc *EntriesUseCase) Add(ctx context.Context, p AddParams) (domain.TimeEntry, error) {
	now := uc.now()
	e := domain.TimeEntry{Description: p.Description}
	if err := uc.assignProject(ctx, &e, p.Project); err != nil {
		return domain.TimeEntry{}, err
	}

	start, stop := now, now
	var err error
	if p.Start != "" {
		if start, err = uc.parse(p.Start, now); err != nil {
			return domain.TimeEntry{}, err
		}
	}
	if p.End != "" {
		if stop, err = uc.parse(p.End, now); err != nil {
			return domain.TimeEntry{}, err
		}
	}

	var secs int64
	if p.Duration != "" {
		if secs, err = duration.Parse(p.Duration); err != nil {
			return domain.TimeEntry{}, err
		}
		switch {
		case p.Start == "":
			start = stop.Add(-time.Duration(secs) * time.Second)
		case p.End == "":
			stop = start.Add(time.Duration(secs) * time.Second)
		}
	} else {
		secs = int64(stop.Sub(start) / time.Second)
	}
	if secs < 0 {
		return domain.TimeEntry{}, fmt.Errorf("%w: end is before start", domain.ErrInvalidInput)
	}
	e.Start, e.Stop, e.DurationSec = start, &stop, secs

	if err := uc.assignWorkspace(ctx, &e); err != nil {
		return domain.TimeEntry{}, err
	}
	created, err := uc.Toggl.CreateTimeEntry(ctx, e)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	uc.Log.Debug("time entry added", slog.Int64("id", created.ID))
	return created, nil
}

// Edit updates an existing entry. CalcDuration recomputes the duration from
// start and stop unless the entry is still running.
func (uc *EntriesUseCase) Edit(ctx context.Context, p EditParams) (domain.TimeEntry, error) {
	now := uc.now()
	e, err := uc.Toggl.GetTimeEntry(ctx, p.ID)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("entry %d: %w", p.ID, err)
	}
	if p.Project != nil {
		if err := uc.assignProject(ctx, &e, *p.Project); err != nil {
			return domain.TimeEntry{}, err
		}
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Start != nil {
		if e.Start, err = uc.parse(*p.Start, now); err != nil {
			return domain.TimeEntry{}, err
		}
	}
	if p.End != nil {
		stop, err := uc.parse(*p.End, now)
		if err != nil {
			return domain.TimeEntry{}, err
		}
		e.Stop = &stop
	}

	switch {
	case p.CalcDuration && e.Stop != nil:
		e.DurationSec = int64(e.Stop.Sub(e.Start) / time.Second)
	case p.Duration != nil:
		if e.DurationSec, err = duration.Parse(*p.Duration); err != nil {
			return domain.TimeEntry{}, err
		}
	}
	return uc.Toggl.UpdateTimeEntry(ctx, e)
}

// Start begins a running entry at "at" (default now).
func (uc *EntriesUseCase) Start(ctx context.Context, description, project, at string) (domain.TimeEntry, error) {
	now := uc.now()
	e := domain.TimeEntry{Description: description, Start: now, DurationSec: -1}
	if err := uc.assignProject(ctx, &e, project); err != nil {
		return domain.TimeEntry{}, err
	}
	if at != "" {
		start, err := uc.parse(at, now)
		if err != nil {
			return domain.TimeEntry{}, err
		}
		e.Start = start
	}
	if err := uc.assignWorkspace(ctx, &e); err != nil {
		return domain.TimeEntry{}, err
	}
	return uc.Toggl.CreateTimeEntry(ctx, e)
}

// Stop ends the running entry at "at" (default now).
func (uc *EntriesUseCase) Stop(ctx context.Context, at string) (domain.TimeEntry, error) {
	now := uc.now()
	e, err := uc.Current(ctx)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	stop := now
	if at != "" {
		if stop, err = uc.parse(at, now); err != nil {
			return domain.TimeEntry{}, err
		}
	}
	if stop.Before(e.Start) {
		return domain.TimeEntry{}, fmt.Errorf("%w: stop time is before the entry's start", domain.ErrInvalidInput)
	}
	e.Stop = &stop
	e.DurationSec = int64(stop.Sub(e.Start) / time.Second)
	return uc.Toggl.UpdateTimeEntry(ctx, e)
}

// Delete removes the entry with id.
func (uc *EntriesUseCase) Delete(ctx context.Context, id int64) error {
	e, err := uc.Toggl.GetTimeEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("entry %d: %w", id, err)
	}
	if e.WorkspaceID == nil {
		return errors.New("entry has no workspace")
	}
	uc.Log.Info("deleting entry", slog.Int64("id", id))
	if err := uc.Toggl.DeleteTimeEntry(ctx, *e.WorkspaceID, id); err != nil {
		return fmt.Errorf("entry %d: %w", id, err)
	}
	return nil
}

func (uc *EntriesUseCase) assignProject(ctx context.Context, e *domain.TimeEntry, key string) error {
	if key == "" {
		return nil
	}
	p, err := uc.Catalog.FindProject(ctx, key)
	if err != nil {
		return err
	}
	id, wid := p.ID, p.WorkspaceID
	e.ProjectID, e.WorkspaceID, e.Project = &id, &wid, &p
	return nil
}

func (uc *EntriesUseCase) assignWorkspace(ctx context.Context, e *domain.TimeEntry) error {
	if e.WorkspaceID != nil {
		return nil
	}
	wid, err := workspaceFor(ctx, uc.Toggl, uc.Catalog, "", uc.DefaultWorkspace)
	if err != nil {
		return err
	}
	e.WorkspaceID = &wid
	return nil
}
