package models

import "time"

// ReminderDelivery records that a collaborator was reminded about a project starting on a
// given date. A project moved to a new date gets a fresh set of reminders.
type ReminderDelivery struct {
	Base
	ProjectID       string    `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_reminder_deliveries_key"`
	Email           string    `json:"email" gorm:"not null;uniqueIndex:idx_reminder_deliveries_key"`
	RealizationDate Date      `json:"realization_date" gorm:"not null;uniqueIndex:idx_reminder_deliveries_key"`
	RunID           string    `json:"run_id" gorm:"index"`
	SentAt          time.Time `json:"sent_at"`
}
