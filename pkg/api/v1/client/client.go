// Package client provides the API client for interacting with the taskboard API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/services"
	"github.com/taskboard/taskboard/pkg/api/v1/handlers"
	"github.com/taskboard/taskboard/pkg/api/v1/routes"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// Project Endpoints
	ListProjects(ctx context.Context, page int) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (services.ProjectDetails, error)
	CreateProject(ctx context.Context, params handlers.ProjectCreateParams) (models.Project, error)
	UpdateProject(ctx context.Context, id string, params handlers.ProjectUpdateParams) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// Task Endpoints
	CreateTask(ctx context.Context, projectID string, params handlers.TaskCreateParams) (services.TaskChange, error)
	ToggleTask(ctx context.Context, projectID, taskID string) (services.TaskChange, error)
	DeleteTask(ctx context.Context, projectID, taskID string) (services.TaskChange, error)

	// Collaborator Endpoints
	ListCollaborators(ctx context.Context, projectID string) ([]models.Collaborator, error)
	CreateCollaborator(ctx context.Context, projectID string, params handlers.CollaboratorCreateParams) (models.Collaborator, error)
	DeleteCollaborator(ctx context.Context, projectID, collaboratorID string) error

	// Rating Endpoints
	ListRatings(ctx context.Context, projectID string) (services.ProjectRatings, error)
	RateProject(ctx context.Context, projectID string, params handlers.RatingParams) (services.ProjectRatings, error)

	// Reminder Endpoints
	DispatchReminders(ctx context.Context) (handlers.DispatchResponse, error)
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL: %q", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodPatch:
		agent = fiber.Patch(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Accept", "application/json")
	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the request and decodes the body into v. A non-2xx status is returned as a
// *fiber.Error carrying the server's error message; the body is still decoded into v when it can be.
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		if v != nil {
			_ = json.Unmarshal(body, v)
		}
		msg := string(body)
		var errResp handlers.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			msg = errResp.Error
			if details, ok := errResp.Details.(string); ok && details != "" {
				msg = fmt.Sprintf("%s: %s", msg, details)
			}
		}
		return &fiber.Error{
			Code:    statusCode,
			Message: msg,
		}
	}

	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	return c.doRequest(agent, response)
}

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var response map[string]string
	if err := c.executeRequest(ctx, http.MethodGet, routes.HealthCheckURL(), nil, &response); err != nil {
		return map[string]string{}, err
	}
	return response, nil
}

// Project methods implementation

// ListProjects retrieves one page of projects; pages start at 1
func (c *APIClient) ListProjects(ctx context.Context, page int) ([]models.Project, error) {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	var response handlers.ProjectListResponse
	if err := c.executeRequest(ctx, http.MethodGet, routes.GetProjectsURL(q), nil, &response); err != nil {
		return nil, err
	}
	return response.Projects, nil
}

// GetProject retrieves a project with its tasks and rating summary
func (c *APIClient) GetProject(ctx context.Context, id string) (services.ProjectDetails, error) {
	response := services.ProjectDetails{Project: &models.Project{}}
	if err := c.executeRequest(ctx, http.MethodGet, routes.GetProjectURL(id), nil, &response); err != nil {
		return services.ProjectDetails{}, err
	}
	return response, nil
}

// CreateProject creates a project
func (c *APIClient) CreateProject(ctx context.Context, params handlers.ProjectCreateParams) (models.Project, error) {
	var response models.Project
	err := c.executeRequest(ctx, http.MethodPost, routes.CreateProjectURL(), params, &response)
	return response, err
}

// UpdateProject changes the fields set in params
func (c *APIClient) UpdateProject(ctx context.Context, id string, params handlers.ProjectUpdateParams) (models.Project, error) {
	var response models.Project
	err := c.executeRequest(ctx, http.MethodPatch, routes.UpdateProjectURL(id), params, &response)
	return response, err
}

// DeleteProject deletes a project
func (c *APIClient) DeleteProject(ctx context.Context, id string) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteProjectURL(id), nil, nil)
}

// Task methods implementation

// CreateTask adds a task to a project
func (c *APIClient) CreateTask(ctx context.Context, projectID string, params handlers.TaskCreateParams) (services.TaskChange, error) {
	var response services.TaskChange
	err := c.executeRequest(ctx, http.MethodPost, routes.CreateTaskURL(projectID), params, &response)
	return response, err
}

// ToggleTask flips a task between done and not done
func (c *APIClient) ToggleTask(ctx context.Context, projectID, taskID string) (services.TaskChange, error) {
	var response services.TaskChange
	err := c.executeRequest(ctx, http.MethodPatch, routes.ToggleTaskURL(projectID, taskID), nil, &response)
	return response, err
}

// DeleteTask removes a task
func (c *APIClient) DeleteTask(ctx context.Context, projectID, taskID string) (services.TaskChange, error) {
	var response services.TaskChange
	err := c.executeRequest(ctx, http.MethodDelete, routes.DeleteTaskURL(projectID, taskID), nil, &response)
	return response, err
}

// Collaborator methods implementation

// ListCollaborators retrieves the collaborators of a project
func (c *APIClient) ListCollaborators(ctx context.Context, projectID string) ([]models.Collaborator, error) {
	var response []models.Collaborator
	if err := c.executeRequest(ctx, http.MethodGet, routes.GetCollaboratorsURL(projectID), nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// CreateCollaborator invites an email address to a project
func (c *APIClient) CreateCollaborator(ctx context.Context, projectID string, params handlers.CollaboratorCreateParams) (models.Collaborator, error) {
	var response models.Collaborator
	err := c.executeRequest(ctx, http.MethodPost, routes.CreateCollaboratorURL(projectID), params, &response)
	return response, err
}

// DeleteCollaborator removes a collaborator from a project
func (c *APIClient) DeleteCollaborator(ctx context.Context, projectID, collaboratorID string) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteCollaboratorURL(projectID, collaboratorID), nil, nil)
}

// Rating methods implementation

// ListRatings retrieves the ratings of a project with their average
func (c *APIClient) ListRatings(ctx context.Context, projectID string) (services.ProjectRatings, error) {
	var response services.ProjectRatings
	err := c.executeRequest(ctx, http.MethodGet, routes.GetRatingsURL(projectID), nil, &response)
	return response, err
}

// RateProject stores a score for a project
func (c *APIClient) RateProject(ctx context.Context, projectID string, params handlers.RatingParams) (services.ProjectRatings, error) {
	var response services.ProjectRatings
	err := c.executeRequest(ctx, http.MethodPut, routes.RateProjectURL(projectID), params, &response)
	return response, err
}

// Reminder methods implementation

// DispatchReminders triggers a reminder run. On failure the returned response still carries the
// server's payload, including the partial summary when there is one.
func (c *APIClient) DispatchReminders(ctx context.Context) (handlers.DispatchResponse, error) {
	var response handlers.DispatchResponse
	err := c.executeRequest(ctx, http.MethodPost, routes.DispatchRemindersURL(), nil, &response)
	return response, err
}
