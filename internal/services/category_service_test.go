package services

import (
	"errors"
	"testing"

	"github.com/taskhubapp/taskhub-backend/internal/dto"
)

func TestCreateCategory(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)

	created, err := categories.Create(&dto.CreateCategoryRequest{Name: "home"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 || created.Name != "home" {
		t.Fatalf("unexpected category: %+v", created)
	}
}

func TestCreateCategoryRequiresName(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)

	if _, err := categories.Create(&dto.CreateCategoryRequest{}); !errors.Is(err, ErrCategoryNameRequired) {
		t.Fatalf("expected ErrCategoryNameRequired, got %v", err)
	}
}

func TestCategoryNamesAreNotUnique(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryService(db)

	if _, err := categories.Create(&dto.CreateCategoryRequest{Name: "home"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	// Duplicate names are permitted.
	if _, err := categories.Create(&dto.CreateCategoryRequest{Name: "home"}); err != nil {
		t.Fatalf("duplicate name rejected: %v", err)
	}

	all, err := categories.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(all))
	}
}
