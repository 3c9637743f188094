// Package services holds the domain operations behind the HTTP API
package services

import (
	"context"
	"strings"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/db/repos"
)

// ProjectDetails is a project with its tasks and rating aggregate
type ProjectDetails struct {
	*models.Project
	Rating repos.RatingSummary `json:"rating"`
}

// ProjectUpdate carries the fields a caller wants to change; nil fields are left untouched
type ProjectUpdate struct {
	Name            *string
	Description     *string
	Status          *models.ProjectStatus
	RealizationDate *models.Date
	// ClearRealizationDate removes the realization date
	ClearRealizationDate bool
}

// Project handles project-related operations
type Project struct {
	repo       *repos.ProjectRepository
	ratingRepo *repos.RatingRepository
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(repo *repos.ProjectRepository, ratingRepo *repos.RatingRepository) *Project {
	return &Project{
		repo:       repo,
		ratingRepo: ratingRepo,
	}
}

// Create creates a new project with one task per non-blank title
func (s *Project) Create(ctx context.Context, project *models.Project, taskTitles []string) error {
	project.Status = models.ProjectStatusNotStarted
	project.Tasks = nil
	for _, title := range taskTitles {
		if strings.TrimSpace(title) == "" {
			continue
		}
		project.Tasks = append(project.Tasks, models.Task{Title: strings.TrimSpace(title)})
	}
	return s.repo.Create(ctx, project)
}

// Get retrieves a project with its tasks and rating summary
func (s *Project) Get(ctx context.Context, id string) (*ProjectDetails, error) {
	project, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	summary, err := s.ratingRepo.Summary(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProjectDetails{Project: project, Rating: summary}, nil
}

// List retrieves all projects with pagination
func (s *Project) List(ctx context.Context, opts *models.ListOptions) ([]models.Project, error) {
	return s.repo.List(ctx, opts)
}

// Update applies a partial update to a project
func (s *Project) Update(ctx context.Context, id string, update ProjectUpdate) (*models.Project, error) {
	project, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		project.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	if update.RealizationDate != nil {
		date := *update.RealizationDate
		project.RealizationDate = &date
	}
	if update.ClearRealizationDate {
		project.RealizationDate = nil
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete deletes a project and everything attached to it
func (s *Project) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
