package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/model"
)

func TestBootstrapRoles(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()

	if err := BootstrapRoles(ctx, st); err != nil {
		t.Fatalf("BootstrapRoles() error = %v", err)
	}
	if got := st.Count("roles"); got != len(model.RoleNames) {
		t.Fatalf("role count = %d, want %d", got, len(model.RoleNames))
	}

	for _, name := range model.RoleNames {
		role, err := st.FindRoleByName(ctx, name)
		if err != nil {
			t.Fatalf("FindRoleByName(%s) error = %v", name, err)
		}
		if len(role.Permissions) != len(model.RolePermissions[name]) {
			t.Errorf("role %s has %d permissions, want %d",
				name, len(role.Permissions), len(model.RolePermissions[name]))
		}
	}

	// A second run finds everything in place and adds nothing.
	if err := BootstrapRoles(ctx, st); err != nil {
		t.Fatalf("second BootstrapRoles() error = %v", err)
	}
	if got := st.Count("roles"); got != len(model.RoleNames) {
		t.Errorf("role count after rerun = %d, want %d", got, len(model.RoleNames))
	}
}

func TestBootstrapRoles_NeverReconciles(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()

	// An OWNER role with a stripped permission set predates bootstrap.
	stripped := &model.Role{
		Name:        model.RoleOwner,
		Permissions: []model.Permission{model.PermViewOnly},
	}
	if err := st.CreateRole(ctx, stripped); err != nil {
		t.Fatalf("CreateRole() error = %v", err)
	}

	if err := BootstrapRoles(ctx, st); err != nil {
		t.Fatalf("BootstrapRoles() error = %v", err)
	}
	role, err := st.FindRoleByName(ctx, model.RoleOwner)
	if err != nil {
		t.Fatalf("FindRoleByName() error = %v", err)
	}
	if len(role.Permissions) != 1 {
		t.Errorf("existing role was reconciled: %d permissions, want 1", len(role.Permissions))
	}
}

func TestRequireRoles_Missing(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()

	_, err := RequireRoles(ctx, st, model.RoleOwner)
	if !errors.Is(err, ErrPrerequisiteMissing) {
		t.Fatalf("err = %v, want ErrPrerequisiteMissing", err)
	}
}

func TestRequireRoles_Found(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()
	if err := BootstrapRoles(ctx, st); err != nil {
		t.Fatalf("BootstrapRoles() error = %v", err)
	}

	roles, err := RequireRoles(ctx, st, model.RoleOwner, model.RoleAdmin, model.RoleMember)
	if err != nil {
		t.Fatalf("RequireRoles() error = %v", err)
	}
	for _, name := range model.RoleNames {
		role, ok := roles[name]
		if !ok || role == nil {
			t.Fatalf("role %s missing from result", name)
		}
		if role.ID.IsZero() {
			t.Errorf("role %s has a zero id", name)
		}
	}
}
