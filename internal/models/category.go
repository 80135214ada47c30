package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:80;not null" json:"name"`

	Tasks []Task `gorm:"many2many:task_categories;" json:"-"`
}
