package models

import "time"

// Task statuses form a closed set; anything else is rejected at the service layer.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:120;not null" json:"title"`
	Description string     `gorm:"size:255" json:"description"`
	Status      string     `gorm:"size:50;not null;default:'pending'" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`

	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Categories []Category `gorm:"many2many:task_categories;" json:"categories"`
}
