package routes

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "health", got: HealthCheckURL(), want: "/health"},
		{name: "projects", got: GetProjectsURL(nil), want: "/api/v1/projects"},
		{name: "projects page", got: GetProjectsURL(url.Values{"page": []string{"2"}}), want: "/api/v1/projects?page=2"},
		{name: "project", got: GetProjectURL("p1"), want: "/api/v1/projects/p1"},
		{name: "create project", got: CreateProjectURL(), want: "/api/v1/projects"},
		{name: "update project", got: UpdateProjectURL("p1"), want: "/api/v1/projects/p1"},
		{name: "delete project", got: DeleteProjectURL("p1"), want: "/api/v1/projects/p1"},
		{name: "create task", got: CreateTaskURL("p1"), want: "/api/v1/projects/p1/tasks"},
		{name: "toggle task", got: ToggleTaskURL("p1", "t1"), want: "/api/v1/projects/p1/tasks/t1/toggle"},
		{name: "delete task", got: DeleteTaskURL("p1", "t1"), want: "/api/v1/projects/p1/tasks/t1"},
		{name: "collaborators", got: GetCollaboratorsURL("p1"), want: "/api/v1/projects/p1/collaborators"},
		{name: "invite", got: CreateCollaboratorURL("p1"), want: "/api/v1/projects/p1/collaborators"},
		{name: "remove collaborator", got: DeleteCollaboratorURL("p1", "c1"), want: "/api/v1/projects/p1/collaborators/c1"},
		{name: "ratings", got: GetRatingsURL("p1"), want: "/api/v1/projects/p1/ratings"},
		{name: "rate", got: RateProjectURL("p1"), want: "/api/v1/projects/p1/ratings"},
		{name: "dispatch", got: DispatchRemindersURL(), want: "/api/v1/reminders/dispatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestBuildURL_UnknownRoute(t *testing.T) {
	assert.Empty(t, BuildURL("NoSuchRoute", nil, nil))
}
