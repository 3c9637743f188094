// Package mock provides a testify mock of the API client for command tests
package mock

import (
	"context"

	testifymock "github.com/stretchr/testify/mock"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/services"
	"github.com/taskboard/taskboard/pkg/api/v1/client"
	"github.com/taskboard/taskboard/pkg/api/v1/handlers"
)

// MockClient implements client.Client
type MockClient struct {
	testifymock.Mock
}

var _ client.Client = &MockClient{}

// HealthCheck mocks client.Client.HealthCheck
func (m *MockClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).(map[string]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListProjects mocks client.Client.ListProjects
func (m *MockClient) ListProjects(ctx context.Context, page int) ([]models.Project, error) {
	args := m.Called(ctx, page)
	if v, ok := args.Get(0).([]models.Project); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetProject mocks client.Client.GetProject
func (m *MockClient) GetProject(ctx context.Context, id string) (services.ProjectDetails, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(services.ProjectDetails), args.Error(1)
}

// CreateProject mocks client.Client.CreateProject
func (m *MockClient) CreateProject(ctx context.Context, params handlers.ProjectCreateParams) (models.Project, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(models.Project), args.Error(1)
}

// UpdateProject mocks client.Client.UpdateProject
func (m *MockClient) UpdateProject(ctx context.Context, id string, params handlers.ProjectUpdateParams) (models.Project, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(models.Project), args.Error(1)
}

// DeleteProject mocks client.Client.DeleteProject
func (m *MockClient) DeleteProject(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// CreateTask mocks client.Client.CreateTask
func (m *MockClient) CreateTask(ctx context.Context, projectID string, params handlers.TaskCreateParams) (services.TaskChange, error) {
	args := m.Called(ctx, projectID, params)
	return args.Get(0).(services.TaskChange), args.Error(1)
}

// ToggleTask mocks client.Client.ToggleTask
func (m *MockClient) ToggleTask(ctx context.Context, projectID, taskID string) (services.TaskChange, error) {
	args := m.Called(ctx, projectID, taskID)
	return args.Get(0).(services.TaskChange), args.Error(1)
}

// DeleteTask mocks client.Client.DeleteTask
func (m *MockClient) DeleteTask(ctx context.Context, projectID, taskID string) (services.TaskChange, error) {
	args := m.Called(ctx, projectID, taskID)
	return args.Get(0).(services.TaskChange), args.Error(1)
}

// ListCollaborators mocks client.Client.ListCollaborators
func (m *MockClient) ListCollaborators(ctx context.Context, projectID string) ([]models.Collaborator, error) {
	args := m.Called(ctx, projectID)
	if v, ok := args.Get(0).([]models.Collaborator); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateCollaborator mocks client.Client.CreateCollaborator
func (m *MockClient) CreateCollaborator(ctx context.Context, projectID string, params handlers.CollaboratorCreateParams) (models.Collaborator, error) {
	args := m.Called(ctx, projectID, params)
	return args.Get(0).(models.Collaborator), args.Error(1)
}

// DeleteCollaborator mocks client.Client.DeleteCollaborator
func (m *MockClient) DeleteCollaborator(ctx context.Context, projectID, collaboratorID string) error {
	return m.Called(ctx, projectID, collaboratorID).Error(0)
}

// ListRatings mocks client.Client.ListRatings
func (m *MockClient) ListRatings(ctx context.Context, projectID string) (services.ProjectRatings, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(services.ProjectRatings), args.Error(1)
}

// RateProject mocks client.Client.RateProject
func (m *MockClient) RateProject(ctx context.Context, projectID string, params handlers.RatingParams) (services.ProjectRatings, error) {
	args := m.Called(ctx, projectID, params)
	return args.Get(0).(services.ProjectRatings), args.Error(1)
}

// DispatchReminders mocks client.Client.DispatchReminders
func (m *MockClient) DispatchReminders(ctx context.Context) (handlers.DispatchResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(handlers.DispatchResponse), args.Error(1)
}
