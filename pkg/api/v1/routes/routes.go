// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/pkg/api/v1/handlers"
)

/*

To keep this file organized, routes should be organized in the following way:

1. Smallest scope first (i.e. task routes before project routes)
2. For similar scopes, put the endpoints in alphabetical order
3. Order routes in GET, POST, PUT, PATCH, DELETE order.
	a. Within this ordering, param urls (ie /:id) should go last, otherwise fiber will interpret the route slug as that param.
	b. After param considerations, order alphabetically.
4. For clarity, naming should match the action (i.e. GetProject, DeleteProject)

*/

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// Collaborator routes
	GetCollaborators   = "GetCollaborators"
	CreateCollaborator = "CreateCollaborator"
	DeleteCollaborator = "DeleteCollaborator"

	// Rating routes
	GetRatings  = "GetRatings"
	RateProject = "RateProject"

	// Task routes
	CreateTask = "CreateTask"
	ToggleTask = "ToggleTask"
	DeleteTask = "DeleteTask"

	// Project routes
	GetProjects   = "GetProjects"
	GetProject    = "GetProject"
	CreateProject = "CreateProject"
	UpdateProject = "UpdateProject"
	DeleteProject = "DeleteProject"

	// Reminder routes
	DispatchReminders = "DispatchReminders"
)

// Handlers groups every handler the routes point to
type Handlers struct {
	Project      *handlers.ProjectHandler
	Task         *handlers.TaskHandler
	Collaborator *handlers.CollaboratorHandler
	Rating       *handlers.RatingHandler
	Reminder     *handlers.ReminderHandler
}

// routeCache stores extracted routes for use prior to compilation
var (
	routeCache     map[string]string
	routeCacheMu   sync.RWMutex
	routeCacheInit sync.Once
)

// RegisterRoutes configures all the v1 routes
//
// NOTE: route ordering is important because routes will try and match in the order they are registered.
func RegisterRoutes(app *fiber.App, h Handlers) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	// API v1 routes
	v1 := app.Group(APIv1Prefix)

	// Collaborator endpoints
	collaborators := v1.Group("/projects/:id/collaborators")
	collaborators.Get("/", h.Collaborator.ListCollaborators).Name(GetCollaborators)
	collaborators.Post("/", h.Collaborator.CreateCollaborator).Name(CreateCollaborator)
	collaborators.Delete("/:collaboratorID", h.Collaborator.DeleteCollaborator).Name(DeleteCollaborator)

	// Rating endpoints
	ratings := v1.Group("/projects/:id/ratings")
	ratings.Get("/", h.Rating.ListRatings).Name(GetRatings)
	ratings.Put("/", h.Rating.RateProject).Name(RateProject)

	// Task endpoints
	tasks := v1.Group("/projects/:id/tasks")
	tasks.Post("/", h.Task.CreateTask).Name(CreateTask)
	tasks.Patch("/:taskID/toggle", h.Task.ToggleTask).Name(ToggleTask)
	tasks.Delete("/:taskID", h.Task.DeleteTask).Name(DeleteTask)

	// Project endpoints
	projects := v1.Group("/projects")
	projects.Get("/", h.Project.ListProjects).Name(GetProjects)
	projects.Get("/:id", h.Project.GetProject).Name(GetProject)
	projects.Post("/", h.Project.CreateProject).Name(CreateProject)
	projects.Patch("/:id", h.Project.UpdateProject).Name(UpdateProject)
	projects.Delete("/:id", h.Project.DeleteProject).Name(DeleteProject)

	// Reminder endpoints
	v1.Post("/reminders/dispatch", h.Reminder.DispatchReminders).Name(DispatchReminders)
}

// initRouteCache initializes the route cache by creating a mock app and extracting routes
func initRouteCache() {
	routeCacheInit.Do(func() {
		routeCache = make(map[string]string)

		app := fiber.New()
		RegisterRoutes(app, Handlers{
			Project:      &handlers.ProjectHandler{},
			Task:         &handlers.TaskHandler{},
			Collaborator: &handlers.CollaboratorHandler{},
			Rating:       &handlers.RatingHandler{},
			Reminder:     &handlers.ReminderHandler{},
		})

		for _, route := range app.GetRoutes() {
			if route.Name != "" {
				routeCache[route.Name] = route.Path
			}
		}
	})
}

// GetRoute returns the route pattern for the given route name
func GetRoute(name string) string {
	initRouteCache()

	routeCacheMu.RLock()
	defer routeCacheMu.RUnlock()
	return routeCache[name]
}

// BuildURL builds a URL for the given route name and parameters
func BuildURL(routeName string, params map[string]string, queryParams url.Values) string {
	route := GetRoute(routeName)
	if route == "" {
		return ""
	}

	// Replace parameters in the route
	for param, value := range params {
		route = strings.ReplaceAll(route, ":"+param, url.PathEscape(value))
	}

	// Remove trailing slash if it's a base endpoint with no parameters
	if len(route) > 1 && strings.HasSuffix(route, "/") {
		route = strings.TrimSuffix(route, "/")
	}

	if len(queryParams) > 0 {
		route = fmt.Sprintf("%s?%s", route, queryParams.Encode())
	}

	return route
}

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return BuildURL(HealthCheck, nil, nil)
}

// Project route helpers

// GetProjectsURL returns the URL for listing projects
func GetProjectsURL(queryParams url.Values) string {
	return BuildURL(GetProjects, nil, queryParams)
}

// GetProjectURL returns the URL for a single project
func GetProjectURL(id string) string {
	return BuildURL(GetProject, map[string]string{"id": id}, nil)
}

// CreateProjectURL returns the URL for creating a project
func CreateProjectURL() string {
	return BuildURL(CreateProject, nil, nil)
}

// UpdateProjectURL returns the URL for updating a project
func UpdateProjectURL(id string) string {
	return BuildURL(UpdateProject, map[string]string{"id": id}, nil)
}

// DeleteProjectURL returns the URL for deleting a project
func DeleteProjectURL(id string) string {
	return BuildURL(DeleteProject, map[string]string{"id": id}, nil)
}

// Task route helpers

// CreateTaskURL returns the URL for adding a task to a project
func CreateTaskURL(projectID string) string {
	return BuildURL(CreateTask, map[string]string{"id": projectID}, nil)
}

// ToggleTaskURL returns the URL for toggling a task
func ToggleTaskURL(projectID, taskID string) string {
	return BuildURL(ToggleTask, map[string]string{"id": projectID, "taskID": taskID}, nil)
}

// DeleteTaskURL returns the URL for deleting a task
func DeleteTaskURL(projectID, taskID string) string {
	return BuildURL(DeleteTask, map[string]string{"id": projectID, "taskID": taskID}, nil)
}

// Collaborator route helpers

// GetCollaboratorsURL returns the URL for listing the collaborators of a project
func GetCollaboratorsURL(projectID string) string {
	return BuildURL(GetCollaborators, map[string]string{"id": projectID}, nil)
}

// CreateCollaboratorURL returns the URL for inviting a collaborator
func CreateCollaboratorURL(projectID string) string {
	return BuildURL(CreateCollaborator, map[string]string{"id": projectID}, nil)
}

// DeleteCollaboratorURL returns the URL for removing a collaborator
func DeleteCollaboratorURL(projectID, collaboratorID string) string {
	return BuildURL(DeleteCollaborator, map[string]string{"id": projectID, "collaboratorID": collaboratorID}, nil)
}

// Rating route helpers

// GetRatingsURL returns the URL for the ratings of a project
func GetRatingsURL(projectID string) string {
	return BuildURL(GetRatings, map[string]string{"id": projectID}, nil)
}

// RateProjectURL returns the URL for rating a project
func RateProjectURL(projectID string) string {
	return BuildURL(RateProject, map[string]string{"id": projectID}, nil)
}

// Reminder route helpers

// DispatchRemindersURL returns the URL that triggers a reminder run
func DispatchRemindersURL() string {
	return BuildURL(DispatchReminders, nil, nil)
}
