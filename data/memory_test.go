package data

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thanhtai05/task-manager/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemory_NotFound(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	if _, err := st.FindUserByEmail(ctx, "nobody@gmail.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindUserByEmail() err = %v, want ErrNotFound", err)
	}
	if _, err := st.FindUserByID(ctx, primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindUserByID() err = %v, want ErrNotFound", err)
	}
	if _, err := st.FindRoleByName(ctx, model.RoleOwner); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindRoleByName() err = %v, want ErrNotFound", err)
	}
	if _, err := st.FindAccountByUser(ctx, primitive.NewObjectID(), model.ProviderEmail); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindAccountByUser() err = %v, want ErrNotFound", err)
	}
	if err := st.SaveUser(ctx, &model.User{ID: primitive.NewObjectID()}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SaveUser() err = %v, want ErrNotFound", err)
	}
}

func TestMemory_CopySemantics(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	user := &model.User{Name: "Trần An", Email: "tran.an@gmail.com"}
	if err := st.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if user.ID.IsZero() {
		t.Fatal("CreateUser() did not assign an id")
	}

	// Mutating the caller's copy must not leak into the store.
	user.Name = "changed"
	got, err := st.FindUserByEmail(ctx, "tran.an@gmail.com")
	if err != nil {
		t.Fatalf("FindUserByEmail() error = %v", err)
	}
	if got.Name != "Trần An" {
		t.Errorf("stored name = %q, want %q", got.Name, "Trần An")
	}

	// SaveUser is the only write path for updates.
	got.Name = "Trần An Updated"
	if err := st.SaveUser(ctx, got); err != nil {
		t.Fatalf("SaveUser() error = %v", err)
	}
	again, err := st.FindUserByID(ctx, got.ID)
	if err != nil {
		t.Fatalf("FindUserByID() error = %v", err)
	}
	if again.Name != "Trần An Updated" {
		t.Errorf("name after save = %q, want %q", again.Name, "Trần An Updated")
	}
}

func TestMemory_TaskPrefixQueries(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()
	now := time.Now()

	tasks := []*model.Task{
		{TaskCode: "MULTI-1-0-ab12", Title: "a", CreatedAt: now, UpdatedAt: now},
		{TaskCode: "MULTI-1-1-cd34", Title: "b", CreatedAt: now, UpdatedAt: now},
		{TaskCode: "SEED-1-0", Title: "c", CreatedAt: now, UpdatedAt: now},
	}
	inserted, err := st.InsertTasks(ctx, tasks)
	if err != nil || inserted != 3 {
		t.Fatalf("InsertTasks() = %d, %v", inserted, err)
	}

	n, err := st.CountTasks(ctx)
	if err != nil || n != 3 {
		t.Fatalf("CountTasks() = %d, %v, want 3", n, err)
	}

	for prefix, want := range map[string]bool{"MULTI-": true, "SEED-": true, "OTHER-": false} {
		got, err := st.HasTaskCodePrefix(ctx, prefix)
		if err != nil {
			t.Fatalf("HasTaskCodePrefix(%q) error = %v", prefix, err)
		}
		if got != want {
			t.Errorf("HasTaskCodePrefix(%q) = %v, want %v", prefix, got, want)
		}
	}

	multi, err := st.ListTasksByCodePrefix(ctx, "MULTI-", 0)
	if err != nil || len(multi) != 2 {
		t.Fatalf("ListTasksByCodePrefix(MULTI-) = %d tasks, %v, want 2", len(multi), err)
	}
	limited, err := st.ListTasksByCodePrefix(ctx, "MULTI-", 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("ListTasksByCodePrefix(MULTI-, 1) = %d tasks, %v, want 1", len(limited), err)
	}
}

func TestMemory_IdentityCandidates(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()
	users := []*model.User{
		{Name: "Trần An", Email: "tran.an@gmail.com"},
		{Name: "User 7", Email: "user7@gmail.com"},
		{Name: "Phạm Hoa", Email: "pham.hoa@example.vn"},
	}
	for _, u := range users {
		if err := st.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
	}

	got, err := st.ListIdentityCandidates(ctx, "gmail.com", `^(User \d+|Demo User)$`)
	if err != nil {
		t.Fatalf("ListIdentityCandidates() error = %v", err)
	}
	// The clean gmail user is the only non-candidate.
	if len(got) != 2 {
		t.Fatalf("candidates = %d, want 2", len(got))
	}
	for _, u := range got {
		if u.Email == "tran.an@gmail.com" {
			t.Errorf("clean user %q flagged as candidate", u.Email)
		}
	}
}
