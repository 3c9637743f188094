package services

import (
	"context"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/db/repos"
)

// ProjectRatings lists the ratings of a project with their aggregate
type ProjectRatings struct {
	Ratings []models.Rating     `json:"ratings"`
	Summary repos.RatingSummary `json:"summary"`
}

// Rating handles project ratings
type Rating struct {
	repo *repos.RatingRepository
}

// NewRatingService creates a new instance of RatingService
func NewRatingService(repo *repos.RatingRepository) *Rating {
	return &Rating{
		repo: repo,
	}
}

// Rate records email's score for a project, replacing an earlier score by the same email
func (s *Rating) Rate(ctx context.Context, projectID, email string, score int) (*ProjectRatings, error) {
	rating := &models.Rating{ProjectID: projectID, Email: email, Score: score}
	if err := s.repo.Upsert(ctx, rating); err != nil {
		return nil, err
	}
	return s.List(ctx, projectID)
}

// List retrieves every rating of a project and the average score
func (s *Rating) List(ctx context.Context, projectID string) (*ProjectRatings, error) {
	ratings, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	summary, err := s.repo.Summary(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &ProjectRatings{Ratings: ratings, Summary: summary}, nil
}
