package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	msql "toggl-cli/internal/adapter/mysql"
	tg "toggl-cli/internal/adapter/toggl"
	"toggl-cli/internal/cache"
	"toggl-cli/internal/catalog"
	"toggl-cli/internal/config"
	"toggl-cli/internal/domain"
	"toggl-cli/internal/migrate"
	"toggl-cli/internal/ports"
	"toggl-cli/internal/usecase"
)

// App wires adapters and use cases for one invocation.
type App struct {
	log *slog.Logger
	cfg config.Config

	Toggl      ports.TogglClient
	Catalog    *catalog.Catalog
	Entries    *usecase.EntriesUseCase
	Projects   *usecase.ProjectsUseCase
	Workspaces *usecase.WorkspacesUseCase
	Clients    *usecase.ClientsUseCase
	Tasks      *usecase.TasksUseCase
}

func New(log *slog.Logger, cfg config.Config) (*App, error) {
	togglClient := tg.NewClient(cfg.Toggl.BaseURL, tg.Credentials{
		APIToken: cfg.Toggl.APIToken,
		Username: cfg.Toggl.Username,
		Password: cfg.Toggl.Password,
	}, log)
	return newApp(log, cfg, togglClient)
}

func newApp(log *slog.Logger, cfg config.Config, remote ports.TogglClient) (*App, error) {
	c, err := cache.New(cfg.Cache.Path, cfg.Cache.Enabled, cfg.Cache.MaxAgeDays, log)
	if err != nil {
		return nil, err
	}
	cat := catalog.New(remote, c, cfg.Aliases, log)

	a := &App{log: log, cfg: cfg, Toggl: remote, Catalog: cat}
	a.Entries = &usecase.EntriesUseCase{
		Log:              log,
		Toggl:            remote,
		Catalog:          cat,
		Location:         cfg.Options.Location,
		DayLayout:        cfg.Options.DayLayout,
		DefaultWorkspace: cfg.Options.DefaultWorkspace,
	}
	a.Projects = &usecase.ProjectsUseCase{Log: log, Toggl: remote, Catalog: cat, ShowArchived: cfg.Options.ShowArchivedProjects}
	a.Workspaces = &usecase.WorkspacesUseCase{Log: log, Toggl: remote, Catalog: cat}
	a.Clients = &usecase.ClientsUseCase{Log: log, Toggl: remote, Catalog: cat, DefaultWorkspace: cfg.Options.DefaultWorkspace}
	a.Tasks = &usecase.TasksUseCase{Log: log, Toggl: remote, Catalog: cat}
	return a, nil
}

// Config returns the configuration the app was built from.
func (a *App) Config() config.Config { return a.cfg }

// UpdateCache rewrites every cached catalog payload.
func (a *App) UpdateCache(ctx context.Context) error {
	return a.Catalog.RefreshAll(ctx)
}

// Export migrates the MySQL schema and copies entries in [from, to] into it.
func (a *App) Export(ctx context.Context, from, to time.Time) error {
	if a.cfg.MySQL.DSN == "" {
		return fmt.Errorf("%w: mysql.dsn (or MYSQL_DSN) is required for export", domain.ErrInvalidInput)
	}
	if err := migrate.Run(ctx, a.cfg.MySQL.DSN, a.log); err != nil {
		return err
	}
	sink, err := msql.Open(ctx, a.cfg.MySQL.DSN, a.log)
	if err != nil {
		return err
	}
	defer sink.Close()

	uc := &usecase.ExportUseCase{
		Log:     a.log,
		Toggl:   a.Toggl,
		Catalog: a.Catalog,
		Sink:    sink,
	}
	return uc.Run(ctx, from, to)
}
