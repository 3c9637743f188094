package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/test/mocks"
)

var (
	jan1 = models.NewDate(2024, time.January, 1)
	jan3 = models.NewDate(2024, time.January, 3)
	jan4 = models.NewDate(2024, time.January, 4)
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func project(id, name string, date models.Date) models.Project {
	return models.Project{Base: models.Base{ID: id}, Name: name, RealizationDate: &date}
}

func collaborators(projectID string, emails ...string) []models.Collaborator {
	out := make([]models.Collaborator, 0, len(emails))
	for _, e := range emails {
		out = append(out, models.Collaborator{ProjectID: projectID, Email: e})
	}
	return out
}

func newTestDispatcher(projects *mocks.ProjectSource, collabs *mocks.CollaboratorSource, sender *mocks.Sender, opts Options) *Dispatcher {
	if opts.Clock == nil {
		opts.Clock = fixedClock(time.Date(2024, time.January, 1, 15, 30, 0, 0, time.UTC))
	}
	if opts.From == "" {
		opts.From = "noreply@example.com"
	}
	return NewDispatcher(projects, collabs, nil, sender, nil, opts)
}

func TestDispatcher_SendsOneReminderPerCollaborator(t *testing.T) {
	projects := &mocks.ProjectSource{}
	collabs := &mocks.CollaboratorSource{}
	sender := &mocks.Sender{}

	projects.On("ListStartingBetween", mock.Anything, jan1, jan4).
		Return([]models.Project{project("a", "A", jan3)}, nil)
	collabs.On("ListByProject", mock.Anything, "a").
		Return(collaborators("a", "alice@example.com", "bob@example.com"), nil)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	summary, err := newTestDispatcher(projects, collabs, sender, Options{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, jan1, summary.WindowStart)
	assert.Equal(t, jan4, summary.WindowEnd)
	assert.Equal(t, 1, summary.Projects)
	assert.Equal(t, 2, summary.Attempted)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.NotEmpty(t, summary.RunID)

	sent := sender.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "alice@example.com", sent[0].To)
	assert.Equal(t, "bob@example.com", sent[1].To)
	for _, msg := range sent {
		assert.Equal(t, "noreply@example.com", msg.From)
		assert.Contains(t, msg.Subject, "A")
		assert.Contains(t, msg.Body, "A")
		assert.Contains(t, msg.Body, "2024-01-03")
	}
	projects.AssertExpectations(t)
	collabs.AssertExpectations(t)
}

func TestDispatcher_ProjectListFailure(t *testing.T) {
	projects := &mocks.ProjectSource{}
	collabs := &mocks.CollaboratorSource{}
	sender := &mocks.Sender{}

	projects.On("ListStartingBetween", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	summary, err := newTestDispatcher(projects, collabs, sender, Options{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.Attempted)
	assert.Empty(t, sender.Sent())
	collabs.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
}

func TestDispatcher_CollaboratorListFailureStopsRun(t *testing.T) {
	projects := &mocks.ProjectSource{}
	collabs := &mocks.CollaboratorSource{}
	sender := &mocks.Sender{}

	projects.On("ListStartingBetween", mock.Anything, jan1, jan4).Return([]models.Project{
		project("a", "A", jan1),
		project("b", "B", jan3),
		project("c", "C", jan4),
	}, nil)
	collabs.On("ListByProject", mock.Anything, "a").Return(collaborators("a", "alice@example.com"), nil)
	collabs.On("ListByProject", mock.Anything, "b").Return(nil, errors.New("timeout"))
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	summary, err := newTestDispatcher(projects, collabs, sender, Options{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "B")
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Succeeded, "sends made before the failure are kept")
	require.Len(t, sender.Sent(), 1)
	assert.Equal(t, "alice@example.com", sender.Sent()[0].To)
	collabs.AssertNotCalled(t, "ListByProject", mock.Anything, "c")
}

func TestDispatcher_DeliveryFailureIsIsolated(t *testing.T) {
	projects := &mocks.ProjectSource{}
	collabs := &mocks.CollaboratorSource{}
	sender := &mocks.Sender{}

	projects.On("ListStartingBetween", mock.Anything, jan1, jan4).Return([]models.Project{
		project("a", "A", jan3),
		project("b", "B", jan4),
	}, nil)
	collabs.On("ListByProject", mock.Anything, "a").
		Return(collaborators("a", "bad@example.com", "alice@example.com"), nil)
	collabs.On("ListByProject", mock.Anything, "b").
		Return(collaborators("b", "bob@example.com"), nil)
	sender.On("Send", mock.Anything, mocks.SendTo("bad@example.com")).Return(errors.New("mailbox unavailable"))
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	summary, err := newTestDispatcher(projects, collabs, sender, Options{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Attempted)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)

	require.Len(t, summary.Outcomes, 3)
	assert.Equal(t, Outcome{
		ProjectID:   "a",
		ProjectName: "A",
		Email:       "bad@example.com",
		Status:      OutcomeFailed,
		Error:       "mailbox unavailable",
	}, summary.Outcomes[0])
	assert.Equal(t, OutcomeSent, summary.Outcomes[1].Status)
	assert.Equal(t, "bob@example.com", summary.Outcomes[2].Email)
	assert.Equal(t, OutcomeSent, summary.Outcomes[2].Status)
}

func TestDispatcher_ConcurrentSendsKeepOrder(t *testing.T) {
	projects := &mocks.ProjectSource{}
	collabs := &mocks.CollaboratorSource{}
	sender := &mocks.Sender{}

	emails := []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com", "e@example.com"}
	projects.On("ListStartingBetween", mock.Anything, jan1, jan4).
		Return([]models.Project{project("a", "A", jan3)}, nil)
	collabs.On("ListByProject", mock.Anything, "a").Return(collaborators("a", emails...), nil)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	summary, err := newTestDispatcher(projects, collabs, sender, Options{Concurrency: 3}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(emails), summary.Succeeded)
	for i, e := range emails {
		assert.Equal(t, e, summary.Outcomes[i].Email)
	}
	assert.Len(t, sender.Sent(), len(emails))
}

func TestDispatcher_UsesConfiguredTimezone(t *testing.T) {
	projects := &mocks.ProjectSource{}
	collabs := &mocks.CollaboratorSource{}
	sender := &mocks.Sender{}

	tokyo := time.FixedZone("UTC+9", 9*60*60)
	// 2023-12-31 20:00 UTC is already 2024-01-01 in UTC+9
	now := time.Date(2023, time.December, 31, 20, 0, 0, 0, time.UTC)
	projects.On("ListStartingBetween", mock.Anything, jan1, jan4).Return([]models.Project{}, nil)

	summary, err := newTestDispatcher(projects, collabs, sender, Options{
		Location: tokyo,
		Clock:    fixedClock(now),
	}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jan1, summary.WindowStart)
	assert.Equal(t, 0, summary.Projects)
	projects.AssertExpectations(t)
}

func TestDispatcher_RejectsOverlappingRun(t *testing.T) {
	locker := NewLocalLocker()
	release, err := locker.Acquire(context.Background())
	require.NoError(t, err)

	d := NewDispatcher(&mocks.ProjectSource{}, &mocks.CollaboratorSource{}, nil, &mocks.Sender{}, locker, Options{})
	summary, err := d.Run(context.Background())
	assert.Nil(t, summary)
	assert.True(t, IsRunInProgress(err))

	require.NoError(t, release(context.Background()))
	projects := &mocks.ProjectSource{}
	projects.On("ListStartingBetween", mock.Anything, mock.Anything, mock.Anything).Return([]models.Project{}, nil)
	d = NewDispatcher(projects, &mocks.CollaboratorSource{}, nil, &mocks.Sender{}, locker, Options{})
	_, err = d.Run(context.Background())
	require.NoError(t, err)

	// the lock is given back at the end of a run
	release, err = locker.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, release(context.Background()))
}

func TestWindow(t *testing.T) {
	from, to := Window(time.Date(2024, time.February, 27, 23, 59, 0, 0, time.UTC), nil, 3)
	assert.Equal(t, "2024-02-27", from.String())
	assert.Equal(t, "2024-03-01", to.String(), "leap day is counted")
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage("noreply@example.com", project("a", "Apollo", jan3), "alice@example.com")
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "noreply@example.com", msg.From)
	assert.Contains(t, msg.Subject, "Apollo")
	assert.Contains(t, msg.Body, "Apollo")
	assert.Contains(t, msg.Body, "2024-01-03")
}
