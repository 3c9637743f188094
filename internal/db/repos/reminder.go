package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taskboard/taskboard/internal/db/models"
)

// ReminderRepository is the ledger of reminder emails already delivered
type ReminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository
func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{
		db: db,
	}
}

// Delivered reports whether email was already reminded about project starting on date
func (r *ReminderRepository) Delivered(ctx context.Context, projectID, email string, date models.Date) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ReminderDelivery{}).
		Where("project_id = ? AND email = ? AND realization_date = ?", projectID, email, date).
		Count(&count).Error
	return count > 0, err
}

// Record stores a delivery. Recording the same delivery twice is a no-op.
func (r *ReminderRepository) Record(ctx context.Context, delivery *models.ReminderDelivery) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(delivery).Error
}

// ListByProject retrieves the deliveries made for a project, latest first
func (r *ReminderRepository) ListByProject(ctx context.Context, projectID string) ([]models.ReminderDelivery, error) {
	var deliveries []models.ReminderDelivery
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sent_at DESC").
		Find(&deliveries).Error
	return deliveries, err
}
