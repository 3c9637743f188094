package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taskboard/taskboard/internal/db/models"
)

// ProjectSource is a mock for reminder.ProjectSource
type ProjectSource struct {
	mock.Mock
}

func (m *ProjectSource) ListStartingBetween(ctx context.Context, from, to models.Date) ([]models.Project, error) {
	args := m.Called(ctx, from, to)
	if projects, ok := args.Get(0).([]models.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

// CollaboratorSource is a mock for reminder.CollaboratorSource
type CollaboratorSource struct {
	mock.Mock
}

func (m *CollaboratorSource) ListByProject(ctx context.Context, projectID string) ([]models.Collaborator, error) {
	args := m.Called(ctx, projectID)
	if collaborators, ok := args.Get(0).([]models.Collaborator); ok {
		return collaborators, args.Error(1)
	}
	return nil, args.Error(1)
}
