package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/guimashan/platfrom-sub000/internal/models"
)

func TestUpsertUser(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := &models.User{Sub: "oidc|abc123", Email: "admin@guimashan.org", Name: "王小明"}
	if err := db.UpsertUser(ctx, user); err != nil {
		t.Fatalf("UpsertUser error: %v", err)
	}
	if user.Role != models.RoleViewer {
		t.Errorf("new user role = %q, want viewer", user.Role)
	}

	// Second upsert keeps the assigned role, refreshes profile fields.
	if err := db.UpdateUserRole(ctx, user.ID, models.RoleAdmin); err != nil {
		t.Fatal(err)
	}
	again := &models.User{Sub: "oidc|abc123", Email: "admin@guimashan.org", Name: "王大明"}
	if err := db.UpsertUser(ctx, again); err != nil {
		t.Fatal(err)
	}
	if again.Role != models.RoleAdmin {
		t.Errorf("role after re-login = %q, want admin", again.Role)
	}
	if again.ID != user.ID {
		t.Error("upsert created a second user for the same sub")
	}
}

func TestGetUserBySub(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := &models.User{Sub: "oidc|lookup", Email: "editor@guimashan.org", Name: "編輯者"}
	if err := db.UpsertUser(ctx, user); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetUserBySub(ctx, "oidc|lookup")
	if err != nil {
		t.Fatalf("GetUserBySub error: %v", err)
	}
	if got.Email != "editor@guimashan.org" {
		t.Errorf("email = %q", got.Email)
	}

	if _, err := db.GetUserBySub(ctx, "oidc|missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserBySub err = %v, want ErrUserNotFound", err)
	}
}

func TestListUsers(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for _, u := range []*models.User{
		{Sub: "oidc|list-1", Email: "a@guimashan.org", Name: "甲"},
		{Sub: "oidc|list-2", Email: "b@guimashan.org", Name: "乙"},
	} {
		if err := db.UpsertUser(ctx, u); err != nil {
			t.Fatal(err)
		}
	}

	users, err := db.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("ListUsers returned %d users, want 2", len(users))
	}
	subs := map[string]bool{}
	for _, u := range users {
		subs[u.Sub] = true
	}
	if !subs["oidc|list-1"] || !subs["oidc|list-2"] {
		t.Errorf("ListUsers subs = %v", subs)
	}
}

func TestUpdateUserRoleNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	err := db.UpdateUserRole(context.Background(), uuid.New(), models.RoleEditor)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UpdateUserRole err = %v, want ErrUserNotFound", err)
	}
}
