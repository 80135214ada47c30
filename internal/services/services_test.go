package services

import (
	"testing"
	"time"

	"github.com/taskhubapp/taskhub-backend/internal/config"
	"github.com/taskhubapp/taskhub-backend/internal/dto"
	"github.com/taskhubapp/taskhub-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps the in-memory database alive for the whole test.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Task{},
		&models.RefreshToken{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
}

func seedCategories(t *testing.T, db *gorm.DB, names ...string) []models.Category {
	t.Helper()
	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		c := models.Category{Name: name}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("failed to seed category %q: %v", name, err)
		}
		categories = append(categories, c)
	}
	return categories
}

func registerUser(t *testing.T, auth *AuthService, username, email, password string) uint {
	t.Helper()
	req := dto.RegisterRequest{Username: username, Email: email, Password: password}
	resp, err := auth.Register(&req)
	if err != nil {
		t.Fatalf("failed to register %q: %v", username, err)
	}
	return resp.User.ID
}
