package models

import (
	"errors"

	"gorm.io/gorm"
)

// Rating bounds
const (
	MinScore = 1
	MaxScore = 5
)

// RatingScoreField is the column updated when a rater changes their score
const RatingScoreField = "score"

// ErrInvalidScore is returned for a score outside [MinScore, MaxScore]
var ErrInvalidScore = errors.New("score must be between 1 and 5")

// Rating is one rater's score for a project
type Rating struct {
	Base
	ProjectID string `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_project_email"`
	Email     string `json:"email" gorm:"not null;uniqueIndex:idx_ratings_project_email"`
	Score     int    `json:"score" gorm:"not null"`
}

// Validate ensures that the rating data is valid
func (r *Rating) Validate() error {
	if r.Score < MinScore || r.Score > MaxScore {
		return ErrInvalidScore
	}
	return nil
}

// BeforeSave is a GORM hook that runs before creating or updating a rating
func (r *Rating) BeforeSave(_ *gorm.DB) error {
	email, err := NormalizeEmail(r.Email)
	if err != nil {
		return err
	}
	r.Email = email
	return r.Validate()
}
