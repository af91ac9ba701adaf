package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleName is one of the fixed workspace role names.
type RoleName string

const (
	RoleOwner  RoleName = "OWNER"
	RoleAdmin  RoleName = "ADMIN"
	RoleMember RoleName = "MEMBER"
)

// Permission is a single capability token attached to a role.
type Permission string

const (
	PermCreateWorkspace         Permission = "CREATE_WORKSPACE"
	PermDeleteWorkspace         Permission = "DELETE_WORKSPACE"
	PermEditWorkspace           Permission = "EDIT_WORKSPACE"
	PermManageWorkspaceSettings Permission = "MANAGE_WORKSPACE_SETTINGS"
	PermAddMember               Permission = "ADD_MEMBER"
	PermChangeMemberRole        Permission = "CHANGE_MEMBER_ROLE"
	PermRemoveMember            Permission = "REMOVE_MEMBER"
	PermCreateProject           Permission = "CREATE_PROJECT"
	PermEditProject             Permission = "EDIT_PROJECT"
	PermDeleteProject           Permission = "DELETE_PROJECT"
	PermCreateTask              Permission = "CREATE_TASK"
	PermEditTask                Permission = "EDIT_TASK"
	PermDeleteTask              Permission = "DELETE_TASK"
	PermViewOnly                Permission = "VIEW_ONLY"
)

// Role is created once at bootstrap and never mutated afterwards.
type Role struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        RoleName           `bson:"name" json:"name"`
	Permissions []Permission       `bson:"permissions" json:"permissions"`
}

// RoleNames lists the catalog roles in bootstrap order.
var RoleNames = []RoleName{RoleOwner, RoleAdmin, RoleMember}

// RolePermissions is the static role catalog. The seeder and migrator
// read it; they never redefine what a permission means.
var RolePermissions = map[RoleName][]Permission{
	RoleOwner: {
		PermCreateWorkspace,
		PermEditWorkspace,
		PermDeleteWorkspace,
		PermManageWorkspaceSettings,
		PermAddMember,
		PermChangeMemberRole,
		PermRemoveMember,
		PermCreateProject,
		PermEditProject,
		PermDeleteProject,
		PermCreateTask,
		PermEditTask,
		PermDeleteTask,
		PermViewOnly,
	},
	RoleAdmin: {
		PermAddMember,
		PermCreateProject,
		PermEditProject,
		PermDeleteProject,
		PermCreateTask,
		PermEditTask,
		PermDeleteTask,
		PermViewOnly,
	},
	RoleMember: {
		PermCreateTask,
		PermEditTask,
		PermViewOnly,
	},
}
