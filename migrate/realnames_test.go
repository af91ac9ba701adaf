package migrate

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/model"
	"github.com/thanhtai05/task-manager/seed"
)

func addUser(t *testing.T, st *data.Memory, name, email string, withAccount bool) *model.User {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	user := &model.User{
		Name:      name,
		Email:     email,
		Password:  "x",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := st.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if withAccount {
		account := &model.Account{
			UserID:     user.ID,
			Provider:   model.ProviderEmail,
			ProviderID: email,
			CreatedAt:  now,
		}
		if err := st.CreateAccount(ctx, account); err != nil {
			t.Fatalf("CreateAccount() error = %v", err)
		}
	}
	return user
}

func TestRealNames_RewritesPlaceholders(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()
	placeholder := addUser(t, st, "User 1", "user1@example.com", true)
	addUser(t, st, "Trần Thảo", "tran.thao@gmail.com", true)

	res, err := RealNames(ctx, st, seed.NewRand(1), 100)
	if err != nil {
		t.Fatalf("RealNames() error = %v", err)
	}
	if res.Changed != 1 {
		t.Fatalf("changed = %d, want 1", res.Changed)
	}

	user, err := st.FindUserByID(ctx, placeholder.ID)
	if err != nil {
		t.Fatalf("FindUserByID() error = %v", err)
	}
	if isPlaceholderName(user.Name) {
		t.Errorf("name %q is still a placeholder", user.Name)
	}
	if !strings.HasSuffix(user.Email, "@"+seed.EmailDomain) {
		t.Errorf("email %q not on %s", user.Email, seed.EmailDomain)
	}
	if user.Email == "user1@example.com" {
		t.Error("placeholder email survived the migration")
	}

	account, err := st.FindAccountByUser(ctx, user.ID, model.ProviderEmail)
	if err != nil {
		t.Fatalf("FindAccountByUser() error = %v", err)
	}
	if account.ProviderID != user.Email {
		t.Errorf("account provider id = %q, want %q", account.ProviderID, user.Email)
	}
}

func TestRealNames_NormalizesForeignDomain(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()
	user := addUser(t, st, "Hà My", "ha.my@company.vn", true)

	res, err := RealNames(ctx, st, seed.NewRand(1), 100)
	if err != nil {
		t.Fatalf("RealNames() error = %v", err)
	}
	if res.Changed != 1 {
		t.Fatalf("changed = %d, want 1", res.Changed)
	}

	got, err := st.FindUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindUserByID() error = %v", err)
	}
	if got.Email != "ha-my@"+seed.EmailDomain {
		t.Errorf("email = %q, want %q", got.Email, "ha-my@"+seed.EmailDomain)
	}
	if got.Name != "Hà My" {
		t.Errorf("name = %q, want it untouched", got.Name)
	}
}

func TestRealNames_CollisionGetsNumericSuffix(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()
	addUser(t, st, "Hà My", "ha-my@"+seed.EmailDomain, true)
	user := addUser(t, st, "Hà My", "ha.my@company.vn", true)

	res, err := RealNames(ctx, st, seed.NewRand(1), 100)
	if err != nil {
		t.Fatalf("RealNames() error = %v", err)
	}
	if res.Changed != 1 {
		t.Fatalf("changed = %d, want 1", res.Changed)
	}

	got, err := st.FindUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindUserByID() error = %v", err)
	}
	if got.Email != "ha-my1@"+seed.EmailDomain {
		t.Errorf("email = %q, want %q", got.Email, "ha-my1@"+seed.EmailDomain)
	}
}

func TestRealNames_SkipsUnclassifiableRecords(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()
	// Real name, no email at all. The record is a candidate but nothing
	// about it should change.
	user := addUser(t, st, "Lê Dũng", "", false)

	res, err := RealNames(ctx, st, seed.NewRand(1), 100)
	if err != nil {
		t.Fatalf("RealNames() error = %v", err)
	}
	if res.Candidates != 1 {
		t.Errorf("candidates = %d, want 1", res.Candidates)
	}
	if res.Changed != 0 {
		t.Errorf("changed = %d, want 0", res.Changed)
	}

	got, err := st.FindUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindUserByID() error = %v", err)
	}
	if got.Name != "Lê Dũng" || got.Email != "" {
		t.Errorf("record was modified: name %q, email %q", got.Name, got.Email)
	}
}

func TestRealNames_Idempotent(t *testing.T) {
	ctx := context.Background()
	st := data.NewMemory()
	addUser(t, st, "Demo User", "demo@example.com", true)
	addUser(t, st, "User 2", "user2@example.com", false)

	first, err := RealNames(ctx, st, seed.NewRand(1), 100)
	if err != nil {
		t.Fatalf("RealNames() error = %v", err)
	}
	if first.Changed != 2 {
		t.Fatalf("changed = %d, want 2", first.Changed)
	}

	second, err := RealNames(ctx, st, seed.NewRand(2), 100)
	if err != nil {
		t.Fatalf("second RealNames() error = %v", err)
	}
	if second.Changed != 0 {
		t.Errorf("changed on rerun = %d, want 0", second.Changed)
	}
}

func TestPlaceholderClassifiers(t *testing.T) {
	names := []struct {
		in   string
		want bool
	}{
		{"User 1", true},
		{"User 42", true},
		{"Demo User", true},
		{"demo user", true},
		{"", true},
		{"  ", true},
		{"Trần An", false},
		{"User One", false},
	}
	for _, tt := range names {
		if got := isPlaceholderName(tt.in); got != tt.want {
			t.Errorf("isPlaceholderName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	emails := []struct {
		in   string
		want bool
	}{
		{"user1@example.com", true},
		{"demo@example.com", true},
		{"anyone@example.vn", true},
		{"anyone@example.org", false},
		{"tran.an@gmail.com", false},
		{"", false},
	}
	for _, tt := range emails {
		if got := isPlaceholderEmail(tt.in); got != tt.want {
			t.Errorf("isPlaceholderEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
