package services

import (
	"context"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/db/repos"
)

// Collaborator handles collaborator invitations
type Collaborator struct {
	repo *repos.CollaboratorRepository
}

// NewCollaboratorService creates a new instance of CollaboratorService
func NewCollaboratorService(repo *repos.CollaboratorRepository) *Collaborator {
	return &Collaborator{
		repo: repo,
	}
}

// Invite adds an email to a project's collaborators
func (s *Collaborator) Invite(ctx context.Context, projectID, email string) (*models.Collaborator, error) {
	collaborator := &models.Collaborator{ProjectID: projectID, Email: email}
	if err := s.repo.Create(ctx, collaborator); err != nil {
		return nil, err
	}
	return collaborator, nil
}

// List retrieves a project's collaborators
func (s *Collaborator) List(ctx context.Context, projectID string) ([]models.Collaborator, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// Remove removes a collaborator from a project
func (s *Collaborator) Remove(ctx context.Context, projectID, collaboratorID string) error {
	return s.repo.Delete(ctx, projectID, collaboratorID)
}
