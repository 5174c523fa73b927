package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"toggl-cli/internal/cache"
	"toggl-cli/internal/catalog"
	"toggl-cli/internal/domain"
	"toggl-cli/internal/ports"
)

// ProjectsUseCase manages projects.
type ProjectsUseCase struct {
	Log          *slog.Logger
	Toggl        ports.TogglClient
	Catalog      *catalog.Catalog
	ShowArchived bool
}

// ProjectParams carries optional project fields; nil means unchanged.
type ProjectParams struct {
	Name           *string
	Workspace      *string
	Client         *string
	Billable       *bool
	EstimatedHours *float64
	AutoEstimates  *bool
}

// ListProjectsParams filters the project listing.
type ListProjectsParams struct {
	// ShowArchived overrides the configured default when set.
	ShowArchived *bool
	Workspace    string
	Refresh      bool
}

func (uc *ProjectsUseCase) List(ctx context.Context, p ListProjectsParams) ([]domain.Project, error) {
	showArchived := uc.ShowArchived
	if p.ShowArchived != nil {
		showArchived = *p.ShowArchived
	}
	projects, err := uc.Catalog.Projects(ctx, p.Refresh)
	if err != nil {
		return nil, err
	}
	var ws *domain.Workspace
	if p.Workspace != "" {
		w, err := uc.Catalog.FindWorkspace(ctx, p.Workspace)
		if err != nil {
			return nil, err
		}
		ws = &w
	}

	out := projects[:0]
	for _, proj := range projects {
		if !proj.Active && !showArchived {
			continue
		}
		if ws != nil && proj.WorkspaceID != ws.ID {
			continue
		}
		out = append(out, proj)
	}
	return out, nil
}

func (uc *ProjectsUseCase) Show(ctx context.Context, key string) (domain.Project, error) {
	return uc.Catalog.FindProject(ctx, key)
}

// Add creates a project; name and workspace are required.
func (uc *ProjectsUseCase) Add(ctx context.Context, p ProjectParams) (domain.Project, error) {
	if p.Name == nil || *p.Name == "" || p.Workspace == nil || *p.Workspace == "" {
		return domain.Project{}, fmt.Errorf("%w: a name and a workspace are required when creating a project", domain.ErrInvalidInput)
	}
	proj := domain.Project{Active: true}
	if err := uc.apply(ctx, &proj, p); err != nil {
		return domain.Project{}, err
	}
	created, err := uc.Toggl.CreateProject(ctx, proj)
	if err != nil {
		return domain.Project{}, err
	}
	uc.Catalog.Invalidate(cache.Projects)
	return created, nil
}

func (uc *ProjectsUseCase) Update(ctx context.Context, key string, p ProjectParams) (domain.Project, error) {
	proj, err := uc.Catalog.FindProject(ctx, key)
	if err != nil {
		return domain.Project{}, err
	}
	if err := uc.apply(ctx, &proj, p); err != nil {
		return domain.Project{}, err
	}
	updated, err := uc.Toggl.UpdateProject(ctx, proj)
	if err != nil {
		return domain.Project{}, err
	}
	uc.Catalog.Invalidate(cache.Projects)
	return updated, nil
}

// SetActive archives (active false) or reopens each project in keys.
func (uc *ProjectsUseCase) SetActive(ctx context.Context, keys []string, active bool) ([]domain.Project, error) {
	var out []domain.Project
	defer uc.Catalog.Invalidate(cache.Projects)
	for _, k := range keys {
		proj, err := uc.Catalog.FindProject(ctx, k)
		if err != nil {
			return out, err
		}
		proj.Active = active
		updated, err := uc.Toggl.UpdateProject(ctx, proj)
		if err != nil {
			return out, err
		}
		uc.Log.Debug("project state changed", slog.Int64("id", updated.ID), slog.Bool("active", active))
		out = append(out, updated)
	}
	return out, nil
}

func (uc *ProjectsUseCase) apply(ctx context.Context, proj *domain.Project, p ProjectParams) error {
	if p.Name != nil {
		proj.Name = *p.Name
	}
	if p.Billable != nil {
		proj.Billable = *p.Billable
	}
	if p.EstimatedHours != nil {
		proj.EstimatedHours = *p.EstimatedHours
	}
	if p.AutoEstimates != nil {
		proj.AutoEstimates = *p.AutoEstimates
	}
	if p.Workspace != nil {
		w, err := uc.Catalog.FindWorkspace(ctx, *p.Workspace)
		if err != nil {
			return err
		}
		proj.WorkspaceID, proj.Workspace = w.ID, &w
	}
	if p.Client != nil {
		cl, err := uc.Catalog.FindClient(ctx, *p.Client)
		if err != nil {
			return err
		}
		id := cl.ID
		proj.ClientID, proj.Client = &id, &cl
	}
	return nil
}
