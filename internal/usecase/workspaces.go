package usecase

import (
	"context"
	"log/slog"

	"toggl-cli/internal/catalog"
	"toggl-cli/internal/domain"
	"toggl-cli/internal/ports"
)

// WorkspacesUseCase lists workspaces and their members.
type WorkspacesUseCase struct {
	Log     *slog.Logger
	Toggl   ports.TogglClient
	Catalog *catalog.Catalog
}

func (uc *WorkspacesUseCase) List(ctx context.Context, refresh bool) ([]domain.Workspace, error) {
	return uc.Catalog.Workspaces(ctx, refresh)
}

func (uc *WorkspacesUseCase) Show(ctx context.Context, key string) (domain.Workspace, error) {
	return uc.Catalog.FindWorkspace(ctx, key)
}

// Users lists the members of the workspace matching key.
func (uc *WorkspacesUseCase) Users(ctx context.Context, key string) ([]domain.User, error) {
	w, err := uc.Catalog.FindWorkspace(ctx, key)
	if err != nil {
		return nil, err
	}
	return uc.Toggl.WorkspaceUsers(ctx, w.ID)
}

// SupportsTasks reports whether w's plan includes tasks. Only Pro is known to;
// other tiers are logged and treated as unsupported.
func SupportsTasks(log *slog.Logger, w *domain.Workspace) bool {
	if w == nil {
		log.Warn("could not find workspace")
		return false
	}
	switch w.Profile {
	case domain.ProfilePro:
		return true
	case domain.ProfileFree:
		return false
	default:
		log.Warn("unexpected profile name", slog.String("profile", string(w.Profile)))
		return false
	}
}
