package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Seed carries every count, ratio and range the graph builders use.
// There are no hidden defaults beyond the documented ones in Load.
type Seed struct {
	// DemoTaskCount is the number of tasks the demo dataset creates.
	DemoTaskCount int `validate:"min=1"`
	// Users is the number of users the multi-tenant dataset creates.
	Users int `validate:"min=1"`
	// Workspaces created per user, inclusive range.
	WorkspacesPerUserMin int `validate:"min=0"`
	WorkspacesPerUserMax int `validate:"min=0"`
	// Projects created per workspace, inclusive range.
	ProjectsPerWorkspaceMin int `validate:"min=0"`
	ProjectsPerWorkspaceMax int `validate:"min=0"`
	// TasksTotal is the multi-tenant task count across all projects.
	TasksTotal int `validate:"min=0"`
	// AssignedRatio is the probability a task gets an assignee drawn
	// from its workspace membership.
	AssignedRatio float64 `validate:"gte=0,lte=1"`
	// DueDateRatio is the probability a task carries a due date.
	DueDateRatio float64 `validate:"gte=0,lte=1"`
	// Due dates land now+N days with N in this inclusive range. A
	// negative minimum deliberately produces overdue tasks.
	DueDaysMin int
	DueDaysMax int
	// Extra members added to each multi-tenant workspace, inclusive range.
	ExtraMembersMin int `validate:"min=0"`
	ExtraMembersMax int `validate:"min=0"`
	// MaxAttempts bounds unique identity synthesis retries.
	MaxAttempts int `validate:"min=1"`
	// FixturesDir receives the optional JSON fixture export.
	FixturesDir string
}

// getSeedConfig reads seeder configuration.
func getSeedConfig(v *viper.Viper) *Seed {
	return &Seed{
		DemoTaskCount:           v.GetInt("seed.demo_task_count"),
		Users:                   v.GetInt("seed.users"),
		WorkspacesPerUserMin:    v.GetInt("seed.workspaces_per_user_min"),
		WorkspacesPerUserMax:    v.GetInt("seed.workspaces_per_user_max"),
		ProjectsPerWorkspaceMin: v.GetInt("seed.projects_per_workspace_min"),
		ProjectsPerWorkspaceMax: v.GetInt("seed.projects_per_workspace_max"),
		TasksTotal:              v.GetInt("seed.tasks_total"),
		AssignedRatio:           v.GetFloat64("seed.assigned_ratio"),
		DueDateRatio:            v.GetFloat64("seed.due_date_ratio"),
		DueDaysMin:              v.GetInt("seed.due_days_min"),
		DueDaysMax:              v.GetInt("seed.due_days_max"),
		ExtraMembersMin:         v.GetInt("seed.extra_members_min"),
		ExtraMembersMax:         v.GetInt("seed.extra_members_max"),
		MaxAttempts:             v.GetInt("seed.max_attempts"),
		FixturesDir:             v.GetString("seed.fixtures_dir"),
	}
}

// Validate checks field constraints and range ordering.
func (s *Seed) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return err
	}
	ranges := []struct {
		name     string
		min, max int
	}{
		{"workspaces_per_user", s.WorkspacesPerUserMin, s.WorkspacesPerUserMax},
		{"projects_per_workspace", s.ProjectsPerWorkspaceMin, s.ProjectsPerWorkspaceMax},
		{"due_days", s.DueDaysMin, s.DueDaysMax},
		{"extra_members", s.ExtraMembersMin, s.ExtraMembersMax},
	}
	for _, r := range ranges {
		if r.min > r.max {
			return fmt.Errorf("seed.%s range is inverted: min %d > max %d", r.name, r.min, r.max)
		}
	}
	return nil
}
