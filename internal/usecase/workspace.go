package usecase

import (
	"context"
	"fmt"

	"toggl-cli/internal/catalog"
	"toggl-cli/internal/ports"
)

// workspaceFor picks the workspace for new entities: key when given, then the
// configured default, then the account's default workspace.
func workspaceFor(ctx context.Context, remote ports.TogglClient, cat *catalog.Catalog, key, fallback string) (int64, error) {
	if key == "" {
		key = fallback
	}
	if key != "" {
		w, err := cat.FindWorkspace(ctx, key)
		if err != nil {
			return 0, err
		}
		return w.ID, nil
	}
	me, err := remote.Me(ctx)
	if err != nil {
		return 0, fmt.Errorf("default workspace: %w", err)
	}
	return me.DefaultWorkspaceID, nil
}
