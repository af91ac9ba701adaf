package data

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/thanhtai05/task-manager/config"
	"github.com/thanhtai05/task-manager/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, matching the Mongoose defaults of the original API.
const (
	collUsers      = "users"
	collAccounts   = "accounts"
	collRoles      = "roles"
	collWorkspaces = "workspaces"
	collMembers    = "members"
	collProjects   = "projects"
	collTasks      = "tasks"
)

// Mongo implements Store on top of a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, conf *config.Mongo) (*Mongo, error) {
	if conf == nil || conf.URI == "" {
		return nil, errors.New("mongodb configuration is nil or empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.URI))
	if err != nil {
		return nil, fmt.Errorf("MongoDB connect error: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping error: %w", err)
	}

	return &Mongo{client: client, db: client.Database(conf.Database)}, nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error closing mongodb connection: %w", err)
	}
	return nil
}

// Health verifies the connection is alive.
func (m *Mongo) Health(ctx context.Context) error {
	if err := m.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb health check failed: %w", err)
	}
	return nil
}

func (m *Mongo) coll(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// findOne decodes a single document, mapping the driver's no-documents
// error to ErrNotFound.
func findOne[T any](ctx context.Context, c *mongo.Collection, filter bson.M) (*T, error) {
	var out T
	err := c.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongodb: find %s: %w", c.Name(), err)
	}
	return &out, nil
}

func findMany[T any](ctx context.Context, c *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]*T, error) {
	cur, err := c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("mongodb: find %s: %w", c.Name(), err)
	}
	defer cur.Close(ctx)

	var out []*T
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongodb: decode %s: %w", c.Name(), err)
		}
		out = append(out, &doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongodb: iterate %s: %w", c.Name(), err)
	}
	return out, nil
}

func insertOne(ctx context.Context, c *mongo.Collection, doc any) error {
	if _, err := c.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongodb: insert %s: %w", c.Name(), err)
	}
	return nil
}

func replaceByID(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, doc any) error {
	if _, err := c.ReplaceOne(ctx, bson.M{"_id": id}, doc); err != nil {
		return fmt.Errorf("mongodb: save %s: %w", c.Name(), err)
	}
	return nil
}

func prefixRegex(prefix string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}
}

// Roles

func (m *Mongo) FindRoleByName(ctx context.Context, name model.RoleName) (*model.Role, error) {
	return findOne[model.Role](ctx, m.coll(collRoles), bson.M{"name": name})
}

func (m *Mongo) CreateRole(ctx context.Context, role *model.Role) error {
	if role.ID.IsZero() {
		role.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, m.coll(collRoles), role)
}

// Users

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, m.coll(collUsers), bson.M{"email": email})
}

func (m *Mongo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return findOne[model.User](ctx, m.coll(collUsers), bson.M{"_id": id})
}

func (m *Mongo) CreateUser(ctx context.Context, user *model.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, m.coll(collUsers), user)
}

func (m *Mongo) SaveUser(ctx context.Context, user *model.User) error {
	return replaceByID(ctx, m.coll(collUsers), user.ID, user)
}

func (m *Mongo) ListUserEmails(ctx context.Context) ([]string, error) {
	users, err := findMany[model.User](ctx, m.coll(collUsers), bson.M{},
		options.Find().SetProjection(bson.M{"email": 1}))
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(users))
	for _, u := range users {
		emails = append(emails, u.Email)
	}
	return emails, nil
}

func (m *Mongo) ListUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	return findMany[model.User](ctx, m.coll(collUsers), bson.M{"_id": bson.M{"$in": ids}})
}

func (m *Mongo) ListIdentityCandidates(ctx context.Context, emailDomain, namePattern string) ([]*model.User, error) {
	domainRe := primitive.Regex{Pattern: "@" + regexp.QuoteMeta(emailDomain) + "$", Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"email": bson.M{"$not": domainRe}},
		bson.M{"name": primitive.Regex{Pattern: namePattern, Options: "i"}},
	}}
	return findMany[model.User](ctx, m.coll(collUsers), filter)
}

// Accounts

func (m *Mongo) CreateAccount(ctx context.Context, account *model.Account) error {
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, m.coll(collAccounts), account)
}

func (m *Mongo) FindAccountByUser(ctx context.Context, userID primitive.ObjectID, provider model.Provider) (*model.Account, error) {
	return findOne[model.Account](ctx, m.coll(collAccounts), bson.M{"userId": userID, "provider": provider})
}

func (m *Mongo) SaveAccount(ctx context.Context, account *model.Account) error {
	return replaceByID(ctx, m.coll(collAccounts), account.ID, account)
}

func (m *Mongo) ListProviderIDs(ctx context.Context, provider model.Provider) ([]string, error) {
	accounts, err := findMany[model.Account](ctx, m.coll(collAccounts), bson.M{"provider": provider},
		options.Find().SetProjection(bson.M{"providerId": 1}))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ProviderID)
	}
	return ids, nil
}

// Workspaces

func (m *Mongo) CreateWorkspace(ctx context.Context, ws *model.Workspace) error {
	if ws.ID.IsZero() {
		ws.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, m.coll(collWorkspaces), ws)
}

func (m *Mongo) FindWorkspaceByOwner(ctx context.Context, owner primitive.ObjectID, namePrefix string) (*model.Workspace, error) {
	filter := bson.M{"owner": owner}
	if namePrefix != "" {
		filter["name"] = prefixRegex(namePrefix)
	}
	return findOne[model.Workspace](ctx, m.coll(collWorkspaces), filter)
}

func (m *Mongo) ListWorkspacesByNamePrefix(ctx context.Context, prefix string) ([]*model.Workspace, error) {
	return findMany[model.Workspace](ctx, m.coll(collWorkspaces), bson.M{"name": prefixRegex(prefix)})
}

// Members

func (m *Mongo) CreateMember(ctx context.Context, member *model.Member) error {
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, m.coll(collMembers), member)
}

func (m *Mongo) ListMembersByWorkspaces(ctx context.Context, workspaceIDs []primitive.ObjectID) ([]*model.Member, error) {
	return findMany[model.Member](ctx, m.coll(collMembers), bson.M{"workspaceId": bson.M{"$in": workspaceIDs}})
}

// Projects

func (m *Mongo) FindProjectByName(ctx context.Context, workspaceID primitive.ObjectID, name string) (*model.Project, error) {
	return findOne[model.Project](ctx, m.coll(collProjects), bson.M{"workspace": workspaceID, "name": name})
}

func (m *Mongo) CreateProject(ctx context.Context, project *model.Project) error {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	return insertOne(ctx, m.coll(collProjects), project)
}

func (m *Mongo) ListProjectsByWorkspaces(ctx context.Context, workspaceIDs []primitive.ObjectID) ([]*model.Project, error) {
	return findMany[model.Project](ctx, m.coll(collProjects), bson.M{"workspace": bson.M{"$in": workspaceIDs}})
}

// Tasks

func (m *Mongo) CountTasks(ctx context.Context) (int64, error) {
	n, err := m.coll(collTasks).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongodb: count %s: %w", collTasks, err)
	}
	return n, nil
}

func (m *Mongo) HasTaskCodePrefix(ctx context.Context, prefix string) (bool, error) {
	_, err := findOne[model.Task](ctx, m.coll(collTasks), bson.M{"taskCode": prefixRegex(prefix)})
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *Mongo) InsertTasks(ctx context.Context, tasks []*model.Task) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}
	docs := make([]any, 0, len(tasks))
	for _, t := range tasks {
		if t.ID.IsZero() {
			t.ID = primitive.NewObjectID()
		}
		docs = append(docs, t)
	}
	res, err := m.coll(collTasks).InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("mongodb: bulk insert %s: %w", collTasks, err)
	}
	return len(res.InsertedIDs), nil
}

func (m *Mongo) ListTasksByCodePrefix(ctx context.Context, prefix string, limit int64) ([]*model.Task, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return findMany[model.Task](ctx, m.coll(collTasks), bson.M{"taskCode": prefixRegex(prefix)}, opts)
}
