package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fixtureTaskLimit bounds the exported task sample.
const fixtureTaskLimit = 500

// ExportFixtures serializes a bounded sample of the multi-tenant
// dataset to JSON files for downstream inspection. It is a diagnostic
// side channel: callers should log a warning on failure, never abort a
// seeding run over it.
func ExportFixtures(ctx context.Context, st data.Store, dir string) error {
	workspaces, err := st.ListWorkspacesByNamePrefix(ctx, MultiWorkspacePrefix)
	if err != nil {
		return fmt.Errorf("export fixtures: %w", err)
	}

	workspaceIDs := make([]primitive.ObjectID, 0, len(workspaces))
	ownerIDs := make([]primitive.ObjectID, 0, len(workspaces))
	seenOwners := make(map[primitive.ObjectID]struct{}, len(workspaces))
	for _, ws := range workspaces {
		workspaceIDs = append(workspaceIDs, ws.ID)
		if _, ok := seenOwners[ws.Owner]; !ok {
			seenOwners[ws.Owner] = struct{}{}
			ownerIDs = append(ownerIDs, ws.Owner)
		}
	}

	users, err := st.ListUsersByIDs(ctx, ownerIDs)
	if err != nil {
		return fmt.Errorf("export fixtures: %w", err)
	}
	projects, err := st.ListProjectsByWorkspaces(ctx, workspaceIDs)
	if err != nil {
		return fmt.Errorf("export fixtures: %w", err)
	}
	tasks, err := st.ListTasksByCodePrefix(ctx, MultiTaskCodePrefix, fixtureTaskLimit)
	if err != nil {
		return fmt.Errorf("export fixtures: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export fixtures: %w", err)
	}
	files := map[string]any{
		"users.json":      users,
		"workspaces.json": workspaces,
		"projects.json":   projects,
		"tasks.json":      tasks,
	}
	for name, v := range files {
		if err := writeJSON(filepath.Join(dir, name), v); err != nil {
			return fmt.Errorf("export fixtures: %w", err)
		}
	}

	logger.Standard().WithField("component", "seed-multi").
		Infof("fixtures exported to %s", dir)
	return nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
