package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/models"
)

// ErrCollaboratorExists is returned when the email is already a collaborator of the project
var ErrCollaboratorExists = errors.New("collaborator already exists for this project")

// CollaboratorRepository handles database operations for collaborators
type CollaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new instance of CollaboratorRepository
func NewCollaboratorRepository(db *gorm.DB) *CollaboratorRepository {
	return &CollaboratorRepository{
		db: db,
	}
}

// Create invites an email to a project. The unique index on (project_id, email) is the final
// guard; the lookup only gives a clean error on the common path.
func (r *CollaboratorRepository) Create(ctx context.Context, collaborator *models.Collaborator) error {
	email, err := models.NormalizeEmail(collaborator.Email)
	if err != nil {
		return err
	}
	collaborator.Email = email

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Project{}, "id = ?", collaborator.ProjectID).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.Collaborator{}).
			Where("project_id = ? AND email = ?", collaborator.ProjectID, collaborator.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCollaboratorExists
		}
		if err := tx.Create(collaborator).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrCollaboratorExists
			}
			return err
		}
		return nil
	})
}

// ListByProject retrieves every collaborator of a project
func (r *CollaboratorRepository) ListByProject(ctx context.Context, projectID string) ([]models.Collaborator, error) {
	var collaborators []models.Collaborator
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC, email ASC").
		Find(&collaborators).Error
	return collaborators, err
}

// Delete removes a collaborator from a project
func (r *CollaboratorRepository) Delete(ctx context.Context, projectID, id string) error {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND id = ?", projectID, id).
		Delete(&models.Collaborator{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
