package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/thanhtai05/task-manager/config"
	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/logger"
	"github.com/thanhtai05/task-manager/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MultiTaskCodePrefix tags every task the multi-tenant dataset creates.
const MultiTaskCodePrefix = "MULTI-"

// MultiWorkspacePrefix names every workspace the multi-tenant dataset
// creates; the fixture export selects on it.
const MultiWorkspacePrefix = "Multi Workspace"

var (
	multiStatusDist = []Choice[model.TaskStatus]{
		{Value: model.StatusTodo, Weight: 25},
		{Value: model.StatusInProgress, Weight: 25},
		{Value: model.StatusInReview, Weight: 15},
		{Value: model.StatusDone, Weight: 25},
		{Value: model.StatusBacklog, Weight: 10},
	}
	multiPriorityDist = []Choice[model.TaskPriority]{
		{Value: model.PriorityLow, Weight: 25},
		{Value: model.PriorityMedium, Weight: 50},
		{Value: model.PriorityHigh, Weight: 25},
	}
)

// projectRef keeps a created project next to its workspace so task
// generation can guarantee project.workspace == task.workspace.
type projectRef struct {
	project   *model.Project
	workspace *model.Workspace
}

// Multi grows the multi-tenant stress dataset: users with EMAIL
// accounts, workspaces per user, extra members, projects per workspace
// and one bulk batch of tasks. The presence of any MULTI- task code
// means a previous run already seeded the store, so the whole call is a
// no-op.
func Multi(ctx context.Context, st data.Store, cfg *config.Seed, rng *rand.Rand) error {
	log := logger.Standard().WithField("component", "seed-multi")

	exists, err := st.HasTaskCodePrefix(ctx, MultiTaskCodePrefix)
	if err != nil {
		return fmt.Errorf("seed multi: %w", err)
	}
	if exists {
		log.Info("skip: MULTI- dataset already present")
		return nil
	}

	log.Infof("start seeding: users=%d, workspaces/user=%d-%d, projects/ws=%d-%d, tasks=%d",
		cfg.Users, cfg.WorkspacesPerUserMin, cfg.WorkspacesPerUserMax,
		cfg.ProjectsPerWorkspaceMin, cfg.ProjectsPerWorkspaceMax, cfg.TasksTotal)

	roles, err := RequireRoles(ctx, st, model.RoleOwner, model.RoleAdmin, model.RoleMember)
	if err != nil {
		return fmt.Errorf("seed multi: %w", err)
	}
	extraRoles := []*model.Role{roles[model.RoleAdmin], roles[model.RoleMember]}

	// Users and their EMAIL accounts. The exclusion set grows as each
	// email is claimed so later draws cannot reuse it.
	usedEmails := make(map[string]struct{}, cfg.Users)
	users := make([]*model.User, 0, cfg.Users)
	for i := 0; i < cfg.Users; i++ {
		person, err := UniquePerson(rng, usedEmails, cfg.MaxAttempts)
		if err != nil {
			return fmt.Errorf("seed multi: %w", err)
		}
		usedEmails[strings.ToLower(person.Email)] = struct{}{}

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
				return fmt.Errorf("seed multi: %w", err)
			}
			account := &model.Account{
				UserID:     user.ID,
				Provider:   model.ProviderEmail,
				ProviderID: person.Email,
				CreatedAt:  now,
			}
			if err := st.CreateAccount(ctx, account); err != nil {
				return fmt.Errorf("seed multi: %w", err)
			}
		case err != nil:
			return fmt.Errorf("seed multi: %w", err)
		}
		users = append(users, user)
	}
	log.Infof("users ensured: %d", len(users))

	// Workspaces per user, each with its owner member and a sample of
	// extra members drawn from the other users.
	var workspaces []*model.Workspace
	for _, user := range users {
		wsCount := RandInt(rng, cfg.WorkspacesPerUserMin, cfg.WorkspacesPerUserMax)
		for w := 0; w < wsCount; w++ {
			name := fmt.Sprintf("%s %s-%d", MultiWorkspacePrefix, user.Name, w+1)
			workspace, err := st.FindWorkspaceByOwner(ctx, user.ID, name)
			switch {
			case errors.Is(err, data.ErrNotFound):
				now := time.Now()
				workspace = &model.Workspace{
					Name:        name,
					Description: "Multi-tenant sample workspace",
					Owner:       user.ID,
					InviteCode:  NewInviteCode(),
					CreatedAt:   now,
					UpdatedAt:   now,
				}
				if err := st.CreateWorkspace(ctx, workspace); err != nil {
					return fmt.Errorf("seed multi: %w", err)
				}
				owner := &model.Member{
					UserID:      user.ID,
					WorkspaceID: workspace.ID,
					Role:        roles[model.RoleOwner].ID,
					JoinedAt:    now,
				}
				if err := st.CreateMember(ctx, owner); err != nil {
					return fmt.Errorf("seed multi: %w", err)
				}
				user.CurrentWorkspace = &workspace.ID
				user.UpdatedAt = now
				if err := st.SaveUser(ctx, user); err != nil {
					return fmt.Errorf("seed multi: %w", err)
				}

				others := make([]*model.User, 0, len(users)-1)
				for _, u := range users {
					if u.ID != user.ID {
						others = append(others, u)
					}
				}
				extraCount := RandInt(rng, cfg.ExtraMembersMin, cfg.ExtraMembersMax)
				for _, other := range SampleWithoutReplacement(rng, others, extraCount) {
					member := &model.Member{
						UserID:      other.ID,
						WorkspaceID: workspace.ID,
						Role:        PickOne(rng, extraRoles).ID,
						JoinedAt:    now,
					}
					if err := st.CreateMember(ctx, member); err != nil {
						return fmt.Errorf("seed multi: %w", err)
					}
				}
			case err != nil:
				return fmt.Errorf("seed multi: %w", err)
			}
			workspaces = append(workspaces, workspace)
		}
	}
	log.Infof("workspaces created: %d", len(workspaces))

	// Projects per workspace. Codename collisions inside one workspace
	// fall through to the existing project, so a workspace may end up
	// with fewer projects than drawn.
	var projects []projectRef
	for _, ws := range workspaces {
		projCount := RandInt(rng, cfg.ProjectsPerWorkspaceMin, cfg.ProjectsPerWorkspaceMax)
		for p := 0; p < projCount; p++ {
			name := "Project " + PickOne(rng, projectCodenames)
			project, err := st.FindProjectByName(ctx, ws.ID, name)
			switch {
			case errors.Is(err, data.ErrNotFound):
				creator, err := st.FindUserByID(ctx, ws.Owner)
				if err != nil {
					return fmt.Errorf("seed multi: %w", err)
				}
				now := time.Now()
				project = &model.Project{
					Name:        name,
					Description: name + " description",
					Emoji:       PickOne(rng, projectEmojis),
					Workspace:   ws.ID,
					CreatedBy:   creator.ID,
					CreatedAt:   now,
					UpdatedAt:   now,
				}
				if err := st.CreateProject(ctx, project); err != nil {
					return fmt.Errorf("seed multi: %w", err)
				}
			case err != nil:
				return fmt.Errorf("seed multi: %w", err)
			}
			projects = append(projects, projectRef{project: project, workspace: ws})
		}
	}
	log.Infof("projects created: %d", len(projects))

	// A zero-width workspace or project range leaves tasks nowhere to
	// live. Surface that as an error instead of letting the task loop
	// draw from an empty pool.
	if len(projects) == 0 && cfg.TasksTotal > 0 {
		return fmt.Errorf("seed multi: no projects in the generated graph to place %d tasks on", cfg.TasksTotal)
	}

	// Membership map for the assignment policy.
	workspaceIDs := make([]primitive.ObjectID, 0, len(workspaces))
	for _, ws := range workspaces {
		workspaceIDs = append(workspaceIDs, ws.ID)
	}
	members, err := st.ListMembersByWorkspaces(ctx, workspaceIDs)
	if err != nil {
		return fmt.Errorf("seed multi: %w", err)
	}
	workspaceMembers := make(map[primitive.ObjectID][]primitive.ObjectID, len(workspaces))
	for _, m := range members {
		workspaceMembers[m.WorkspaceID] = append(workspaceMembers[m.WorkspaceID], m.UserID)
	}

	// Tasks across all projects, one bulk insert.
	now := time.Now()
	runStamp := now.UnixMilli()
	tasks := make([]*model.Task, 0, cfg.TasksTotal)
	for i := 0; i < cfg.TasksTotal; i++ {
		ref := PickOne(rng, projects)

		var dueDate *time.Time
		if rng.Float64() < cfg.DueDateRatio {
			d := now.AddDate(0, 0, RandInt(rng, cfg.DueDaysMin, cfg.DueDaysMax))
			dueDate = &d
		}

		var assignedTo *primitive.ObjectID
		if rng.Float64() < cfg.AssignedRatio {
			if pool := workspaceMembers[ref.workspace.ID]; len(pool) > 0 {
				id := PickOne(rng, pool)
				assignedTo = &id
			}
		}

		tasks = append(tasks, &model.Task{
			TaskCode:    fmt.Sprintf("%s%d-%d-%s", MultiTaskCodePrefix, runStamp, i, taskCodeSuffix()),
			Title:       PickOne(rng, taskVerbs) + " " + PickOne(rng, taskAreas),
			Description: PickOne(rng, taskDescriptions),
			Project:     ref.project.ID,
			Workspace:   ref.workspace.ID,
			Status:      WeightedPick(rng, multiStatusDist),
			Priority:    WeightedPick(rng, multiPriorityDist),
			AssignedTo:  assignedTo,
			CreatedBy:   ref.workspace.Owner,
			DueDate:     dueDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	inserted, err := st.InsertTasks(ctx, tasks)
	if err != nil {
		return fmt.Errorf("seed multi: %w", err)
	}
	log.Infof("inserted %d tasks", inserted)
	return nil
}
