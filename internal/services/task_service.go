package services

import (
	"errors"
	"fmt"

	"github.com/taskhubapp/taskhub-backend/internal/dto"
	"github.com/taskhubapp/taskhub-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidStatus = errors.New("status must be one of: pending, in-progress, completed")
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

func (s *TaskService) Create(req *dto.CreateTaskRequest) (*models.Task, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	var owner models.User
	if err := s.db.First(&owner, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch owner: %w", err)
	}

	categories, err := s.resolveCategories(s.db, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusPending,
		DueDate:     req.DueDate,
		UserID:      owner.ID,
		Categories:  categories,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &task, nil
}

func (s *TaskService) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.Preload("Categories").First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return &task, nil
}

func (s *TaskService) GetAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Preload("Categories").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return tasks, nil
}

// Update changes only the provided fields. A provided category id list
// replaces the task's category set wholesale.
func (s *TaskService) Update(id uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		task.Status = *req.Status
	}
	if req.DueDate.Set {
		task.DueDate = req.DueDate.Time
	}

	// Category replacement and the row update must commit together; a failure
	// in either must leave no partial state behind.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.CategoryIDs != nil {
			categories, err := s.resolveCategories(tx, *req.CategoryIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(task).Association("Categories").Replace(categories); err != nil {
				return fmt.Errorf("failed to replace categories: %w", err)
			}
			task.Categories = categories
		}

		if err := tx.Omit("Categories").Save(task).Error; err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(id uint) error {
	task, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(task).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(task).Error
	})
}

func (s *TaskService) MarkStatus(id uint, status string) (*models.Task, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	task.Status = status
	if err := s.db.Model(task).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	return task, nil
}

// resolveCategories keeps only the ids that exist; unknown ids are dropped,
// not an error.
func (s *TaskService) resolveCategories(db *gorm.DB, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}

	var categories []models.Category
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve categories: %w", err)
	}
	return categories, nil
}
