package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

// Task is the wire shape exchanged with the task API.
type Task struct {
	ID          string               `json:"_id"`
	Title       string               `json:"title"`
	Description *string              `json:"description,omitempty"`
	Status      constants.TaskStatus `json:"status"`
	CreatedBy   CreatorRef           `json:"createdBy"`
	UpdatedBy   *CreatorRef          `json:"updatedBy,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   *time.Time           `json:"updatedAt,omitempty"`
}

// Clone returns a deep copy so callers never share pointer fields.
func (t Task) Clone() Task {
	c := t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	if t.UpdatedBy != nil {
		u := *t.UpdatedBy
		c.UpdatedBy = &u
	}
	if t.UpdatedAt != nil {
		ts := *t.UpdatedAt
		c.UpdatedAt = &ts
	}
	return c
}

func (t Task) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

type CreateTaskData struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// UpdateTaskData is a partial update; nil fields are left untouched.
type UpdateTaskData struct {
	Title       *string               `json:"title,omitempty"`
	Description *string               `json:"description,omitempty"`
	Status      *constants.TaskStatus `json:"status,omitempty"`
}

func (u UpdateTaskData) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}

type DeleteResult struct {
	Message string `json:"message"`
}
