// Package repos provides database repository implementations
package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create creates a project together with any tasks attached to it, in one transaction
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	project.Progress = models.ComputeProgress(project.Tasks)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(project).Error
	})
}

// Get retrieves a project by ID with its tasks in creation order
func (r *ProjectRepository) Get(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves projects, newest first, with pagination
func (r *ProjectRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Project, error) {
	var projects []models.Project
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if opts != nil {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	err := query.Find(&projects).Error
	return projects, err
}

// ListStartingBetween retrieves the projects whose realization date lies in [from, to], both
// ends inclusive. Projects without a realization date never match.
func (r *ProjectRepository) ListStartingBetween(ctx context.Context, from, to models.Date) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("realization_date IS NOT NULL").
		Where("realization_date >= ? AND realization_date <= ?", from, to).
		Order("realization_date ASC, name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects starting between %s and %s: %w", from, to, err)
	}
	return projects, nil
}

// Update saves the editable fields of a project
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).
		Model(project).
		Select("name", "description", "status", "realization_date").
		Updates(project).Error
}

// Delete deletes a project and every row that belongs to it
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{
			&models.Task{},
			&models.Collaborator{},
			&models.Rating{},
			&models.ReminderDelivery{},
		} {
			if err := tx.Where("project_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(&models.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// refreshProgress recomputes a project's progress from its tasks and stores it
func refreshProgress(tx *gorm.DB, projectID string) (int, error) {
	var tasks []models.Task
	if err := tx.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return 0, err
	}
	progress := models.ComputeProgress(tasks)
	// UpdateColumn skips the save hooks, which would validate a partially loaded project
	res := tx.Model(&models.Project{}).Where("id = ?", projectID).UpdateColumn("progress", progress)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return progress, nil
}
