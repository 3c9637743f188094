package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/models"
)

// RatingSummary is the aggregate of every rating of a project
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// RatingRepository handles database operations for ratings
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new instance of RatingRepository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{
		db: db,
	}
}

// Upsert stores a rater's score for a project, replacing any earlier score from the same email
func (r *RatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	email, err := models.NormalizeEmail(rating.Email)
	if err != nil {
		return err
	}
	rating.Email = email
	if err := rating.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Project{}, "id = ?", rating.ProjectID).Error; err != nil {
			return err
		}

		var existing models.Rating
		err := tx.Where("project_id = ? AND email = ?", rating.ProjectID, rating.Email).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Model(&existing).UpdateColumn(models.RatingScoreField, rating.Score).Error; err != nil {
				return err
			}
			rating.ID = existing.ID
			rating.CreatedAt = existing.CreatedAt
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(rating).Error
		default:
			return err
		}
	})
}

// ListByProject retrieves every rating of a project
func (r *RatingRepository) ListByProject(ctx context.Context, projectID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&ratings).Error
	return ratings, err
}

// Summary returns the mean score and the number of ratings; the mean is 0 without ratings
func (r *RatingRepository) Summary(ctx context.Context, projectID string) (RatingSummary, error) {
	var row struct {
		Average *float64
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("AVG(score) AS average, COUNT(*) AS count").
		Where("project_id = ?", projectID).
		Scan(&row).Error
	if err != nil {
		return RatingSummary{}, err
	}

	summary := RatingSummary{Count: row.Count}
	if row.Average != nil {
		summary.Average = *row.Average
	}
	return summary, nil
}
