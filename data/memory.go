package data

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/thanhtai05/task-manager/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory implements Store with in-process slices. It exists so the
// seeder and migrator can run against no database at all, in tests and
// dry runs. Documents are copied on the way in and out, like a real
// store would behave.
type Memory struct {
	mu         sync.RWMutex
	users      []model.User
	accounts   []model.Account
	roles      []model.Role
	workspaces []model.Workspace
	members    []model.Member
	projects   []model.Project
	tasks      []model.Task

	// FailTaskInsert forces the next InsertTasks to fail, for
	// exercising batch-failure paths.
	FailTaskInsert bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Count reports the number of stored documents in a collection.
func (s *Memory) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch collection {
	case collUsers:
		return len(s.users)
	case collAccounts:
		return len(s.accounts)
	case collRoles:
		return len(s.roles)
	case collWorkspaces:
		return len(s.workspaces)
	case collMembers:
		return len(s.members)
	case collProjects:
		return len(s.projects)
	case collTasks:
		return len(s.tasks)
	}
	return 0
}

// Roles

func (s *Memory) FindRoleByName(ctx context.Context, name model.RoleName) (*model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.roles {
		if s.roles[i].Name == name {
			r := s.roles[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) CreateRole(ctx context.Context, role *model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if role.ID.IsZero() {
		role.ID = primitive.NewObjectID()
	}
	s.roles = append(s.roles, *role)
	return nil
}

// Users

func (s *Memory) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) FindUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *Memory) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return fmt.Errorf("save users: %w", ErrNotFound)
}

func (s *Memory) ListUserEmails(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	emails := make([]string, 0, len(s.users))
	for i := range s.users {
		emails = append(emails, s.users[i].Email)
	}
	return emails, nil
}

func (s *Memory) ListUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	want := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.User
	for i := range s.users {
		if _, ok := want[s.users[i].ID]; ok {
			u := s.users[i]
			out = append(out, &u)
		}
	}
	return out, nil
}

func (s *Memory) ListIdentityCandidates(ctx context.Context, emailDomain, namePattern string) ([]*model.User, error) {
	nameRe, err := regexp.Compile("(?i)" + namePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid name pattern: %w", err)
	}
	suffix := "@" + strings.ToLower(emailDomain)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.User
	for i := range s.users {
		u := s.users[i]
		if !strings.HasSuffix(strings.ToLower(u.Email), suffix) || nameRe.MatchString(u.Name) {
			out = append(out, &u)
		}
	}
	return out, nil
}

// Accounts

func (s *Memory) CreateAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	s.accounts = append(s.accounts, *account)
	return nil
}

func (s *Memory) FindAccountByUser(ctx context.Context, userID primitive.ObjectID, provider model.Provider) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.accounts {
		if s.accounts[i].UserID == userID && s.accounts[i].Provider == provider {
			a := s.accounts[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == account.ID {
			s.accounts[i] = *account
			return nil
		}
	}
	return fmt.Errorf("save accounts: %w", ErrNotFound)
}

func (s *Memory) ListProviderIDs(ctx context.Context, provider model.Provider) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for i := range s.accounts {
		if s.accounts[i].Provider == provider {
			out = append(out, s.accounts[i].ProviderID)
		}
	}
	return out, nil
}

// Workspaces

func (s *Memory) CreateWorkspace(ctx context.Context, ws *model.Workspace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ws.ID.IsZero() {
		ws.ID = primitive.NewObjectID()
	}
	s.workspaces = append(s.workspaces, *ws)
	return nil
}

func (s *Memory) FindWorkspaceByOwner(ctx context.Context, owner primitive.ObjectID, namePrefix string) (*model.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.workspaces {
		ws := s.workspaces[i]
		if ws.Owner == owner && (namePrefix == "" || strings.HasPrefix(ws.Name, namePrefix)) {
			return &ws, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) ListWorkspacesByNamePrefix(ctx context.Context, prefix string) ([]*model.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Workspace
	for i := range s.workspaces {
		if strings.HasPrefix(s.workspaces[i].Name, prefix) {
			ws := s.workspaces[i]
			out = append(out, &ws)
		}
	}
	return out, nil
}

// Members

func (s *Memory) CreateMember(ctx context.Context, member *model.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	s.members = append(s.members, *member)
	return nil
}

func (s *Memory) ListMembersByWorkspaces(ctx context.Context, workspaceIDs []primitive.ObjectID) ([]*model.Member, error) {
	want := make(map[primitive.ObjectID]struct{}, len(workspaceIDs))
	for _, id := range workspaceIDs {
		want[id] = struct{}{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Member
	for i := range s.members {
		if _, ok := want[s.members[i].WorkspaceID]; ok {
			m := s.members[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

// Projects

func (s *Memory) FindProjectByName(ctx context.Context, workspaceID primitive.ObjectID, name string) (*model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.projects {
		if s.projects[i].Workspace == workspaceID && s.projects[i].Name == name {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) CreateProject(ctx context.Context, project *model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	s.projects = append(s.projects, *project)
	return nil
}

func (s *Memory) ListProjectsByWorkspaces(ctx context.Context, workspaceIDs []primitive.ObjectID) ([]*model.Project, error) {
	want := make(map[primitive.ObjectID]struct{}, len(workspaceIDs))
	for _, id := range workspaceIDs {
		want[id] = struct{}{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Project
	for i := range s.projects {
		if _, ok := want[s.projects[i].Workspace]; ok {
			p := s.projects[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

// Tasks

func (s *Memory) CountTasks(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.tasks)), nil
}

func (s *Memory) HasTaskCodePrefix(ctx context.Context, prefix string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tasks {
		if strings.HasPrefix(s.tasks[i].TaskCode, prefix) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Memory) InsertTasks(ctx context.Context, tasks []*model.Task) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailTaskInsert {
		return 0, fmt.Errorf("memory: bulk insert tasks: forced failure")
	}
	for _, t := range tasks {
		if t.ID.IsZero() {
			t.ID = primitive.NewObjectID()
		}
		s.tasks = append(s.tasks, *t)
	}
	return len(tasks), nil
}

func (s *Memory) ListTasksByCodePrefix(ctx context.Context, prefix string, limit int64) ([]*model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.Task
	for i := range s.tasks {
		if strings.HasPrefix(s.tasks[i].TaskCode, prefix) {
			t := s.tasks[i]
			out = append(out, &t)
			if limit > 0 && int64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}
