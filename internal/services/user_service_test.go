package services

import (
	"errors"
	"testing"

	"github.com/taskhubapp/taskhub-backend/internal/dto"
	"github.com/taskhubapp/taskhub-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestGetUserNotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	if _, err := users.GetByID(42); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserSelfRenameIsNoOp(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())
	users := NewUserService(db)

	id := registerUser(t, auth, "alice", "a@x.com", "pw123")

	// Renaming to the current username must not be reported as a duplicate.
	updated, err := users.Update(id, &dto.UpdateUserRequest{Username: strPtr("alice")})
	if err != nil {
		t.Fatalf("self-rename failed: %v", err)
	}
	if updated.Username != "alice" {
		t.Fatalf("unexpected username %q", updated.Username)
	}
}

func TestUpdateUserCollision(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())
	users := NewUserService(db)

	registerUser(t, auth, "alice", "a@x.com", "pw123")
	bobID := registerUser(t, auth, "bob", "b@x.com", "pw123")

	if _, err := users.Update(bobID, &dto.UpdateUserRequest{Username: strPtr("alice")}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if _, err := users.Update(bobID, &dto.UpdateUserRequest{Email: strPtr("a@x.com")}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateUserOnlyProvidedFields(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())
	users := NewUserService(db)

	id := registerUser(t, auth, "alice", "a@x.com", "pw123")

	updated, err := users.Update(id, &dto.UpdateUserRequest{Email: strPtr("alice@x.com")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Username != "alice" {
		t.Fatalf("username changed unexpectedly to %q", updated.Username)
	}
	if updated.Email != "alice@x.com" {
		t.Fatalf("email not updated, got %q", updated.Email)
	}

	// Old password still valid: it was not provided.
	if _, err := auth.Login(&dto.LoginRequest{Identifier: "alice", Password: "pw123"}); err != nil {
		t.Fatalf("login after email-only update failed: %v", err)
	}
}

func TestUpdateUserPasswordRehash(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())
	users := NewUserService(db)

	id := registerUser(t, auth, "alice", "a@x.com", "pw123")

	if _, err := users.Update(id, &dto.UpdateUserRequest{Password: strPtr("newpw")}); err != nil {
		t.Fatalf("password update failed: %v", err)
	}

	if _, err := auth.Login(&dto.LoginRequest{Identifier: "alice", Password: "pw123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, err := auth.Login(&dto.LoginRequest{Identifier: "alice", Password: "newpw"}); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestDeleteUserCascadesTasks(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())
	users := NewUserService(db)
	tasks := NewTaskService(db)

	id := registerUser(t, auth, "alice", "a@x.com", "pw123")
	cats := seedCategories(t, db, "home")

	task, err := tasks.Create(&dto.CreateTaskRequest{
		Title: "Buy milk", UserID: id, CategoryIDs: []uint{cats[0].ID},
	})
	if err != nil {
		t.Fatalf("task create failed: %v", err)
	}

	if err := users.Delete(id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := users.GetByID(id); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("user still present: %v", err)
	}
	if _, err := tasks.GetByID(task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("owned task still present: %v", err)
	}

	var junctionRows int64
	if err := db.Table("task_categories").Count(&junctionRows).Error; err != nil {
		t.Fatalf("failed to count junction rows: %v", err)
	}
	if junctionRows != 0 {
		t.Fatalf("expected 0 junction rows, got %d", junctionRows)
	}

	// Categories themselves survive.
	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	if categoryCount != 1 {
		t.Fatalf("expected 1 category, got %d", categoryCount)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	if err := users.Delete(42); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetAllUsers(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())
	users := NewUserService(db)

	registerUser(t, auth, "alice", "a@x.com", "pw123")
	registerUser(t, auth, "bob", "b@x.com", "pw123")

	all, err := users.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}
}
