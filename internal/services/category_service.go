package services

import (
	"errors"
	"fmt"

	"github.com/taskhubapp/taskhub-backend/internal/dto"
	"github.com/taskhubapp/taskhub-backend/internal/models"
	"gorm.io/gorm"
)

var ErrCategoryNameRequired = errors.New("category name is required")

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// Create performs no name-uniqueness check; duplicate names are allowed.
func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, ErrCategoryNameRequired
	}

	category := models.Category{Name: req.Name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

func (s *CategoryService) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}
