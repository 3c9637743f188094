package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/models"
)

// TaskRepository handles database operations for tasks. Every write also refreshes the owning
// project's progress inside the same transaction.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// Create adds a task to a project and returns the project's new progress
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) (int, error) {
	var progress int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Project{}, "id = ?", task.ProjectID).Error; err != nil {
			return err
		}
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		var err error
		progress, err = refreshProgress(tx, task.ProjectID)
		return err
	})
	return progress, err
}

// Get retrieves a task of a project by ID
func (r *TaskRepository) Get(ctx context.Context, projectID, id string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND id = ?", projectID, id).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByProject retrieves all tasks of a project in creation order
func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

// Toggle flips the completed flag of a task and returns the updated task and project progress
func (r *TaskRepository) Toggle(ctx context.Context, projectID, id string) (*models.Task, int, error) {
	var (
		task     models.Task
		progress int
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ? AND id = ?", projectID, id).First(&task).Error; err != nil {
			return err
		}
		task.Completed = !task.Completed
		if err := tx.Model(&task).UpdateColumn(models.TaskCompletedField, task.Completed).Error; err != nil {
			return err
		}
		var err error
		progress, err = refreshProgress(tx, projectID)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return &task, progress, nil
}

// Delete removes a task and returns the project's new progress
func (r *TaskRepository) Delete(ctx context.Context, projectID, id string) (int, error) {
	var progress int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("project_id = ? AND id = ?", projectID, id).Delete(&models.Task{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		var err error
		progress, err = refreshProgress(tx, projectID)
		return err
	})
	return progress, err
}
