package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thanhtai05/task-manager/config"
	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func demoTestConfig() *config.Seed {
	return &config.Seed{
		DemoTaskCount: 50,
		DueDateRatio:  0.7,
		MaxAttempts:   100,
	}
}

func TestDemo(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()
	if err := BootstrapRoles(ctx, st); err != nil {
		t.Fatalf("BootstrapRoles() error = %v", err)
	}

	if err := Demo(ctx, st, demoTestConfig(), NewRand(1)); err != nil {
		t.Fatalf("Demo() error = %v", err)
	}

	wantCounts := map[string]int{
		"users":      1,
		"accounts":   1,
		"workspaces": 1,
		"members":    1,
		"projects":   4,
		"tasks":      50,
	}
	for coll, want := range wantCounts {
		if got := st.Count(coll); got != want {
			t.Errorf("%s count = %d, want %d", coll, got, want)
		}
	}

	ws, err := st.ListWorkspacesByNamePrefix(ctx, "Demo Workspace")
	if err != nil || len(ws) != 1 {
		t.Fatalf("demo workspace lookup: %d found, err = %v", len(ws), err)
	}
	owner, err := st.FindUserByID(ctx, ws[0].Owner)
	if err != nil {
		t.Fatalf("FindUserByID() error = %v", err)
	}
	if owner.CurrentWorkspace == nil || *owner.CurrentWorkspace != ws[0].ID {
		t.Error("owner's current workspace was not set to the demo workspace")
	}
	if ws[0].InviteCode == "" {
		t.Error("workspace has no invite code")
	}

	account, err := st.FindAccountByUser(ctx, owner.ID, model.ProviderEmail)
	if err != nil {
		t.Fatalf("FindAccountByUser() error = %v", err)
	}
	if account.ProviderID != owner.Email {
		t.Errorf("account provider id = %q, want %q", account.ProviderID, owner.Email)
	}

	projects, err := st.ListProjectsByWorkspaces(ctx, []primitive.ObjectID{ws[0].ID})
	if err != nil {
		t.Fatalf("ListProjectsByWorkspaces() error = %v", err)
	}
	projectIDs := make(map[string]bool, len(projects))
	for _, p := range projects {
		projectIDs[p.ID.Hex()] = true
		if p.Workspace != ws[0].ID {
			t.Errorf("project %s not in the demo workspace", p.Name)
		}
		// Emojis belong to the multi-tenant dataset only.
		if p.Emoji != "" {
			t.Errorf("project %s carries emoji %q, want none", p.Name, p.Emoji)
		}
	}

	tasks, err := st.ListTasksByCodePrefix(ctx, DemoTaskCodePrefix, 0)
	if err != nil {
		t.Fatalf("ListTasksByCodePrefix() error = %v", err)
	}
	if len(tasks) != 50 {
		t.Fatalf("task count = %d, want 50", len(tasks))
	}
	for _, task := range tasks {
		if !strings.HasPrefix(task.TaskCode, DemoTaskCodePrefix) {
			t.Fatalf("task code %q lacks the %s prefix", task.TaskCode, DemoTaskCodePrefix)
		}
		if task.Workspace != ws[0].ID {
			t.Fatalf("task %s points at a foreign workspace", task.TaskCode)
		}
		if !projectIDs[task.Project.Hex()] {
			t.Fatalf("task %s points at an unknown project", task.TaskCode)
		}
		if task.AssignedTo != nil && *task.AssignedTo != owner.ID {
			t.Fatalf("task %s assigned to a non-existent user", task.TaskCode)
		}
	}
}

func TestDemo_SkipsNonEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()
	if err := BootstrapRoles(ctx, st); err != nil {
		t.Fatalf("BootstrapRoles() error = %v", err)
	}

	if err := Demo(ctx, st, demoTestConfig(), NewRand(1)); err != nil {
		t.Fatalf("Demo() error = %v", err)
	}
	before := st.Count("tasks")

	// The populated task collection marks the run as already done.
	if err := Demo(ctx, st, demoTestConfig(), NewRand(2)); err != nil {
		t.Fatalf("second Demo() error = %v", err)
	}
	if got := st.Count("tasks"); got != before {
		t.Errorf("task count after rerun = %d, want %d", got, before)
	}
	if got := st.Count("users"); got != 1 {
		t.Errorf("user count after rerun = %d, want 1", got)
	}
}

func TestDemo_MissingRoles(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()

	err := Demo(ctx, st, demoTestConfig(), NewRand(1))
	if !errors.Is(err, ErrPrerequisiteMissing) {
		t.Fatalf("err = %v, want ErrPrerequisiteMissing", err)
	}
	if got := st.Count("tasks"); got != 0 {
		t.Errorf("task count = %d, want 0", got)
	}
}
