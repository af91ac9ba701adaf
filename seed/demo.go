package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/thanhtai05/task-manager/config"
	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/logger"
	"github.com/thanhtai05/task-manager/model"
)

// DemoTaskCodePrefix tags every task the demo dataset creates.
const DemoTaskCodePrefix = "SEED-"

// demoAssignedRatio is the chance a demo task is assigned to the demo
// user. The demo path keeps the original's fixed value; only the
// multi-tenant path reads the configurable ratio.
const demoAssignedRatio = 0.3

var demoProjectNames = []string{
	"Project Alpha", "Project Beta", "Project Gamma", "Project Delta",
}

// Demo grows a single-tenant demo dataset: one user with an EMAIL
// account, one workspace owned by that user, four fixed projects and a
// bulk batch of tasks. A non-empty task collection means a previous run
// already seeded the store, so the whole call is a no-op.
func Demo(ctx context.Context, st data.Store, cfg *config.Seed, rng *rand.Rand) error {
	log := logger.Standard().WithField("component", "seed-demo")

	existing, err := st.CountTasks(ctx)
	if err != nil {
		return fmt.Errorf("seed demo: %w", err)
	}
	if existing > 0 {
		log.Infof("skip: database already has %d tasks", existing)
		return nil
	}

	log.Info("starting demo data seeding")

	person := NewPerson(rng)
	user, err := st.FindUserByEmail(ctx, person.Email)
	switch {
	case errors.Is(err, data.ErrNotFound):
		now := time.Now()
		user = &model.User{
			Name:      person.FullName,
			Email:     person.Email,
			Password:  defaultPassword,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := st.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}
		account := &model.Account{
			UserID:     user.ID,
			Provider:   model.ProviderEmail,
			ProviderID: person.Email,
			CreatedAt:  now,
		}
		if err := st.CreateAccount(ctx, account); err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}
		log.Info("demo user created")
	case err != nil:
		return fmt.Errorf("seed demo: %w", err)
	default:
		log.Info("demo user exists")
	}

	roles, err := RequireRoles(ctx, st, model.RoleOwner)
	if err != nil {
		return fmt.Errorf("seed demo: %w", err)
	}

	workspace, err := st.FindWorkspaceByOwner(ctx, user.ID, "")
	switch {
	case errors.Is(err, data.ErrNotFound):
		now := time.Now()
		workspace = &model.Workspace{
			Name:        "Demo Workspace",
			Description: "Workspace for demo data",
			Owner:       user.ID,
			InviteCode:  NewInviteCode(),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := st.CreateWorkspace(ctx, workspace); err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}
		log.Info("workspace created")

		member := &model.Member{
			UserID:      user.ID,
			WorkspaceID: workspace.ID,
			Role:        roles[model.RoleOwner].ID,
			JoinedAt:    now,
		}
		if err := st.CreateMember(ctx, member); err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}

		user.CurrentWorkspace = &workspace.ID
		user.UpdatedAt = now
		if err := st.SaveUser(ctx, user); err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}
	case err != nil:
		return fmt.Errorf("seed demo: %w", err)
	default:
		log.Info("workspace exists")
	}

	projects := make([]*model.Project, 0, len(demoProjectNames))
	for _, name := range demoProjectNames {
		project, err := st.FindProjectByName(ctx, workspace.ID, name)
		if errors.Is(err, data.ErrNotFound) {
			now := time.Now()
			project = &model.Project{
				Name:        name,
				Description: name + " description",
				Workspace:   workspace.ID,
				CreatedBy:   user.ID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := st.CreateProject(ctx, project); err != nil {
				return fmt.Errorf("seed demo: %w", err)
			}
			log.Infof("project %s created", name)
		} else if err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}
		projects = append(projects, project)
	}

	now := time.Now()
	runStamp := now.UnixMilli()
	tasks := make([]*model.Task, 0, cfg.DemoTaskCount)
	for i := 0; i < cfg.DemoTaskCount; i++ {
		project := PickOne(rng, projects)

		var dueDate *time.Time
		if rng.Float64() < cfg.DueDateRatio {
			d := now.AddDate(0, 0, RandInt(rng, 0, 59))
			dueDate = &d
		}

		var assignedTo *model.User
		if rng.Float64() < demoAssignedRatio {
			assignedTo = user
		}

		task := &model.Task{
			TaskCode:    fmt.Sprintf("%s%d-%d", DemoTaskCodePrefix, runStamp, i),
			Title:       fmt.Sprintf("Task #%d: %s", i+1, PickOne(rng, demoTaskVerbs)),
			Description: PickOne(rng, taskDescriptions),
			Project:     project.ID,
			Workspace:   workspace.ID,
			Status:      PickOne(rng, model.TaskStatuses),
			Priority:    PickOne(rng, model.TaskPriorities),
			CreatedBy:   user.ID,
			DueDate:     dueDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if assignedTo != nil {
			task.AssignedTo = &assignedTo.ID
		}
		tasks = append(tasks, task)
	}

	inserted, err := st.InsertTasks(ctx, tasks)
	if err != nil {
		return fmt.Errorf("seed demo: %w", err)
	}
	log.Infof("inserted %d tasks across %d projects", inserted, len(projects))
	return nil
}
