package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"toggl-cli/internal/catalog"
	"toggl-cli/internal/domain"
	"toggl-cli/internal/duration"
	"toggl-cli/internal/ports"
	"toggl-cli/internal/resolve"
)

// TasksUseCase manages tasks.
type TasksUseCase struct {
	Log     *slog.Logger
	Toggl   ports.TogglClient
	Catalog *catalog.Catalog
}

// TaskParams carries optional task fields; nil means unchanged. Estimate is
// an integer with an optional s, m or h suffix.
type TaskParams struct {
	Name     *string
	Project  *string
	Active   *bool
	Estimate *string
	// User assigns the task to a workspace member by id or name.
	User *string
}

func (uc *TasksUseCase) List(ctx context.Context, includeInactive bool) ([]domain.Task, error) {
	return uc.Catalog.Tasks(ctx, includeInactive)
}

// Show finds a task and attaches its assignee when one is set.
func (uc *TasksUseCase) Show(ctx context.Context, key string) (domain.Task, error) {
	t, err := uc.Catalog.FindTask(ctx, key)
	if err != nil {
		return domain.Task{}, err
	}
	if t.UserID == nil {
		return t, nil
	}
	users, err := uc.Toggl.WorkspaceUsers(ctx, t.WorkspaceID)
	if err != nil {
		uc.Log.Warn("could not load workspace users", slog.String("error", err.Error()))
		return t, nil
	}
	for i := range users {
		if users[i].ID == *t.UserID {
			t.User = &users[i]
			break
		}
	}
	return t, nil
}

// Add creates a task; it needs a name, a project and a Pro workspace.
func (uc *TasksUseCase) Add(ctx context.Context, p TaskParams) (domain.Task, error) {
	if p.Name == nil || *p.Name == "" {
		return domain.Task{}, fmt.Errorf("%w: a name is required for new tasks", domain.ErrInvalidInput)
	}
	if p.Project == nil || *p.Project == "" {
		return domain.Task{}, fmt.Errorf("%w: a project is required for new tasks", domain.ErrInvalidInput)
	}
	t := domain.Task{Active: true}
	if err := uc.apply(ctx, &t, p); err != nil {
		return domain.Task{}, err
	}
	if !SupportsTasks(uc.Log, t.Workspace) {
		return domain.Task{}, domain.ErrUnsupported
	}
	return uc.Toggl.CreateTask(ctx, t)
}

func (uc *TasksUseCase) Update(ctx context.Context, key string, p TaskParams) (domain.Task, error) {
	t, err := uc.Catalog.FindTask(ctx, key)
	if err != nil {
		return domain.Task{}, err
	}
	if err := uc.apply(ctx, &t, p); err != nil {
		return domain.Task{}, err
	}
	return uc.Toggl.UpdateTask(ctx, t)
}

func (uc *TasksUseCase) Delete(ctx context.Context, key string) error {
	t, err := uc.Catalog.FindTask(ctx, key)
	if err != nil {
		return err
	}
	return uc.Toggl.DeleteTask(ctx, t)
}

func (uc *TasksUseCase) apply(ctx context.Context, t *domain.Task, p TaskParams) error {
	if p.Name != nil && *p.Name != "" {
		t.Name = *p.Name
	}
	if p.Active != nil {
		t.Active = *p.Active
	}
	if p.Estimate != nil {
		secs, err := duration.ParseEstimate(*p.Estimate)
		if err != nil {
			return err
		}
		t.EstimatedSeconds = secs
	}
	if p.Project != nil {
		proj, err := uc.Catalog.FindProject(ctx, *p.Project)
		if err != nil {
			return err
		}
		t.ProjectID, t.WorkspaceID = proj.ID, proj.WorkspaceID
		t.Project, t.Workspace = &proj, proj.Workspace
	}
	if p.User != nil {
		users, err := uc.Toggl.WorkspaceUsers(ctx, t.WorkspaceID)
		if err != nil {
			return err
		}
		u, err := resolve.Find(*p.User, users, nil)
		if err != nil {
			return fmt.Errorf("user %w", err)
		}
		id := u.ID
		t.UserID, t.User = &id, &u
	}
	return nil
}
