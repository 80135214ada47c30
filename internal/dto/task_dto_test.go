package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUpdateTaskRequestDueDatePresence(t *testing.T) {
	var omitted UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"title":"x"}`), &omitted); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if omitted.DueDate.Set {
		t.Fatal("omitted due_date must not read as provided")
	}

	var cleared UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"due_date":null}`), &cleared); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !cleared.DueDate.Set || cleared.DueDate.Time != nil {
		t.Fatalf("explicit null must read as provided-and-empty, got Set=%v Time=%v",
			cleared.DueDate.Set, cleared.DueDate.Time)
	}

	var set UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"due_date":"2026-09-01T12:00:00Z"}`), &set); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	want := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	if !set.DueDate.Set || set.DueDate.Time == nil || !set.DueDate.Time.Equal(want) {
		t.Fatalf("expected due date %v, got Set=%v Time=%v", want, set.DueDate.Set, set.DueDate.Time)
	}
}
