package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/logger"
	"github.com/thanhtai05/task-manager/model"
)

// BootstrapRoles ensures one role document exists per catalog entry.
// Missing roles are created with their permission sets; existing roles
// are left untouched, permissions are never reconciled.
func BootstrapRoles(ctx context.Context, st data.Store) error {
	log := logger.Standard().WithField("component", "bootstrap")

	for _, name := range model.RoleNames {
		_, err := st.FindRoleByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, data.ErrNotFound) {
			return fmt.Errorf("bootstrap roles: %w", err)
		}
		role := &model.Role{
			Name:        name,
			Permissions: model.RolePermissions[name],
		}
		if err := st.CreateRole(ctx, role); err != nil {
			return fmt.Errorf("bootstrap roles: %w", err)
		}
		log.Infof("role %s created", name)
	}

	log.Info("default roles ensured")
	return nil
}

// RequireRoles resolves the named roles, failing with
// ErrPrerequisiteMissing when any is absent.
func RequireRoles(ctx context.Context, st data.Store, names ...model.RoleName) (map[model.RoleName]*model.Role, error) {
	roles := make(map[model.RoleName]*model.Role, len(names))
	for _, name := range names {
		role, err := st.FindRoleByName(ctx, name)
		if errors.Is(err, data.ErrNotFound) {
			return nil, fmt.Errorf("role %s: %w", name, ErrPrerequisiteMissing)
		}
		if err != nil {
			return nil, fmt.Errorf("require role %s: %w", name, err)
		}
		roles[name] = role
	}
	return roles, nil
}
