package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"toggl-cli/internal/catalog"
	"toggl-cli/internal/ports"
)

// ExportUseCase copies time entries and projects from Toggl into a Sink.
type ExportUseCase struct {
	Log     *slog.Logger
	Toggl   ports.TogglClient
	Catalog *catalog.Catalog
	Sink    ports.Sink
}

func (uc *ExportUseCase) Run(ctx context.Context, from, to time.Time) error {
	if uc.Toggl == nil || uc.Catalog == nil || uc.Sink == nil {
		return errors.New("usecase not initialized: missing dependencies")
	}

	projects, err := uc.Catalog.Projects(ctx, false)
	if err != nil {
		return err
	}
	if err := uc.Sink.SyncProjects(ctx, projects); err != nil {
		return err
	}

	uc.Log.Info("fetching time entries", slog.Time("from", from), slog.Time("to", to))
	entries, err := uc.Toggl.ListTimeEntries(ctx, from, to)
	if err != nil {
		return err
	}
	uc.Log.Info("fetched time entries", slog.Int("count", len(entries)))

	if len(entries) == 0 {
		uc.Log.Info("no entries to export")
		return nil
	}

	if err := uc.Sink.SyncEntries(ctx, entries); err != nil {
		return err
	}
	uc.Log.Info("export completed", slog.Int("entries", len(entries)), slog.Int("projects", len(projects)))
	return nil
}
