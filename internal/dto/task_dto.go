package dto

import (
	"encoding/json"
	"time"
)

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	UserID      uint       `json:"user_id"`
	CategoryIDs []uint     `json:"category_ids"`
}

// NullTime distinguishes an omitted field (Set false) from an explicit JSON
// null (Set true, Time nil), so a due date can be cleared as well as changed.
type NullTime struct {
	Set  bool
	Time *time.Time
}

func (n *NullTime) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Time = nil
		return nil
	}
	return json.Unmarshal(b, &n.Time)
}

// UpdateTaskRequest uses pointer fields as presence markers. A provided
// CategoryIDs slice replaces the task's category set wholesale; nil leaves it
// untouched.
type UpdateTaskRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	DueDate     NullTime `json:"due_date"`
	CategoryIDs *[]uint  `json:"category_ids"`
}

type MarkStatusRequest struct {
	Status string `json:"status"`
}
