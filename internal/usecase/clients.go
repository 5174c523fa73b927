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

// ClientsUseCase manages clients.
type ClientsUseCase struct {
	Log              *slog.Logger
	Toggl            ports.TogglClient
	Catalog          *catalog.Catalog
	DefaultWorkspace string
}

// ClientParams carries optional client fields; nil means unchanged.
type ClientParams struct {
	Name      *string
	Currency  *string
	Rate      *float64
	Workspace *string
}

func (uc *ClientsUseCase) List(ctx context.Context, refresh bool) ([]domain.Client, error) {
	return uc.Catalog.Clients(ctx, refresh)
}

func (uc *ClientsUseCase) Show(ctx context.Context, key string) (domain.Client, error) {
	return uc.Catalog.FindClient(ctx, key)
}

// Add creates a client in the given, configured or account default workspace.
func (uc *ClientsUseCase) Add(ctx context.Context, p ClientParams) (domain.Client, error) {
	if p.Name == nil || *p.Name == "" {
		return domain.Client{}, fmt.Errorf("%w: a name is required to add a new client", domain.ErrInvalidInput)
	}
	var c domain.Client
	if err := uc.apply(ctx, &c, p); err != nil {
		return domain.Client{}, err
	}
	if c.WorkspaceID == 0 {
		wid, err := workspaceFor(ctx, uc.Toggl, uc.Catalog, "", uc.DefaultWorkspace)
		if err != nil {
			return domain.Client{}, err
		}
		c.WorkspaceID = wid
	}
	created, err := uc.Toggl.CreateClient(ctx, c)
	if err != nil {
		return domain.Client{}, err
	}
	uc.Catalog.Invalidate(cache.Clients)
	return created, nil
}

func (uc *ClientsUseCase) Update(ctx context.Context, key string, p ClientParams) (domain.Client, error) {
	c, err := uc.Catalog.FindClient(ctx, key)
	if err != nil {
		return domain.Client{}, err
	}
	if err := uc.apply(ctx, &c, p); err != nil {
		return domain.Client{}, err
	}
	updated, err := uc.Toggl.UpdateClient(ctx, c)
	if err != nil {
		return domain.Client{}, fmt.Errorf("failed to update client: %w", err)
	}
	uc.Catalog.Invalidate(cache.Clients)
	return updated, nil
}

func (uc *ClientsUseCase) Delete(ctx context.Context, key string) error {
	c, err := uc.Catalog.FindClient(ctx, key)
	if err != nil {
		return err
	}
	if err := uc.Toggl.DeleteClient(ctx, c.WorkspaceID, c.ID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	uc.Log.Info("client deleted", slog.Int64("id", c.ID))
	uc.Catalog.Invalidate(cache.Clients)
	return nil
}

func (uc *ClientsUseCase) apply(ctx context.Context, c *domain.Client, p ClientParams) error {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Currency != nil {
		c.Currency = *p.Currency
	}
	if p.Rate != nil {
		c.HourlyRate = *p.Rate
	}
	if p.Workspace != nil {
		w, err := uc.Catalog.FindWorkspace(ctx, *p.Workspace)
		if err != nil {
			return err
		}
		c.WorkspaceID, c.Workspace = w.ID, &w
	}
	return nil
}
