package services

import (
	"context"
	"strings"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/db/repos"
)

// TaskChange is the result of a task write: the task (nil after a delete) and the recomputed
// progress of its project
type TaskChange struct {
	Task     *models.Task `json:"task,omitempty"`
	Progress int          `json:"progress"`
}

// Task handles task-related operations
type Task struct {
	repo *repos.TaskRepository
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(repo *repos.TaskRepository) *Task {
	return &Task{
		repo: repo,
	}
}

// Add appends a task to a project
func (s *Task) Add(ctx context.Context, projectID, title string) (*TaskChange, error) {
	task := &models.Task{ProjectID: projectID, Title: strings.TrimSpace(title)}
	progress, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	return &TaskChange{Task: task, Progress: progress}, nil
}

// Toggle flips a task between done and not done
func (s *Task) Toggle(ctx context.Context, projectID, taskID string) (*TaskChange, error) {
	task, progress, err := s.repo.Toggle(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	return &TaskChange{Task: task, Progress: progress}, nil
}

// Delete removes a task from a project
func (s *Task) Delete(ctx context.Context, projectID, taskID string) (*TaskChange, error) {
	progress, err := s.repo.Delete(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}
	return &TaskChange{Progress: progress}, nil
}
