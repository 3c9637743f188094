package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// TaskCompletedField is the column toggled when a task is checked or unchecked
const TaskCompletedField = "completed"

// ErrTaskTitleRequired is returned when a task is saved without a title
var ErrTaskTitleRequired = errors.New("task title is required")

// Task is one checklist item of a project
type Task struct {
	Base
	ProjectID string `json:"project_id" gorm:"type:uuid;not null;index"`
	Title     string `json:"title" gorm:"not null"`
	Completed bool   `json:"completed" gorm:"not null;default:false"`
}

// Validate ensures that the task data is valid
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTaskTitleRequired
	}
	return nil
}

// BeforeSave is a GORM hook that runs before creating or updating a task
func (t *Task) BeforeSave(_ *gorm.DB) error {
	return t.Validate()
}
