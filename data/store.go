package data

import (
	"context"
	"errors"

	"github.com/thanhtai05/task-manager/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by the Find* methods when no document matches.
var ErrNotFound = errors.New("document not found")

// Store is the persistence collaborator the seeder and migrator run
// against. Implementations must keep finds, creates and saves
// individually consistent; the callers issue them sequentially.
type Store interface {
	// Roles
	FindRoleByName(ctx context.Context, name model.RoleName) (*model.Role, error)
	CreateRole(ctx context.Context, role *model.Role) error

	// Users
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	SaveUser(ctx context.Context, user *model.User) error
	ListUserEmails(ctx context.Context) ([]string, error)
	ListUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error)
	// ListIdentityCandidates returns users whose email does not end in
	// "@"+emailDomain or whose name matches namePattern, both
	// case-insensitive. namePattern is a regular expression source.
	ListIdentityCandidates(ctx context.Context, emailDomain, namePattern string) ([]*model.User, error)

	// Accounts
	CreateAccount(ctx context.Context, account *model.Account) error
	FindAccountByUser(ctx context.Context, userID primitive.ObjectID, provider model.Provider) (*model.Account, error)
	SaveAccount(ctx context.Context, account *model.Account) error
	ListProviderIDs(ctx context.Context, provider model.Provider) ([]string, error)

	// Workspaces
	CreateWorkspace(ctx context.Context, ws *model.Workspace) error
	// FindWorkspaceByOwner returns the first workspace owned by owner.
	// A non-empty namePrefix additionally requires the workspace name
	// to start with that prefix.
	FindWorkspaceByOwner(ctx context.Context, owner primitive.ObjectID, namePrefix string) (*model.Workspace, error)
	ListWorkspacesByNamePrefix(ctx context.Context, prefix string) ([]*model.Workspace, error)

	// Members
	CreateMember(ctx context.Context, member *model.Member) error
	ListMembersByWorkspaces(ctx context.Context, workspaceIDs []primitive.ObjectID) ([]*model.Member, error)

	// Projects
	FindProjectByName(ctx context.Context, workspaceID primitive.ObjectID, name string) (*model.Project, error)
	CreateProject(ctx context.Context, project *model.Project) error
	ListProjectsByWorkspaces(ctx context.Context, workspaceIDs []primitive.ObjectID) ([]*model.Project, error)

	// Tasks
	CountTasks(ctx context.Context) (int64, error)
	HasTaskCodePrefix(ctx context.Context, prefix string) (bool, error)
	// InsertTasks persists the batch as one ordered bulk insert. A
	// failure fails the whole batch; no partial retry is attempted.
	InsertTasks(ctx context.Context, tasks []*model.Task) (int, error)
	ListTasksByCodePrefix(ctx context.Context, prefix string, limit int64) ([]*model.Task, error)
}
