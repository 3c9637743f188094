package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/db/repos"
)

func TestCollaboratorService_InviteListRemove(t *testing.T) {
	ts := NewTestSetup(t)

	project := &models.Project{Name: "Apollo"}
	require.NoError(t, ts.ProjectService.Create(ts.ctx, project, nil))

	alice, err := ts.CollaboratorService.Invite(ts.ctx, project.ID, "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", alice.Email)

	_, err = ts.CollaboratorService.Invite(ts.ctx, project.ID, "alice@example.com")
	assert.ErrorIs(t, err, repos.ErrCollaboratorExists)

	_, err = ts.CollaboratorService.Invite(ts.ctx, project.ID, "bob@example.com")
	require.NoError(t, err)

	list, err := ts.CollaboratorService.List(ts.ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, ts.CollaboratorService.Remove(ts.ctx, project.ID, alice.ID))
	list, err = ts.CollaboratorService.List(ts.ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bob@example.com", list[0].Email)
}
