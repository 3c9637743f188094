package repos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/taskboard/taskboard/internal/db/models"
)

type ReminderRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *ReminderRepositoryTestSuite) TestRecordAndDelivered() {
	project := s.createProjectStarting("apollo", datePtr(2024, time.January, 3))
	date := *project.RealizationDate

	delivered, err := s.reminderRepo.Delivered(s.ctx, project.ID, "a@example.com", date)
	s.Require().NoError(err)
	s.Require().False(delivered)

	delivery := &models.ReminderDelivery{
		ProjectID:       project.ID,
		Email:           "a@example.com",
		RealizationDate: date,
		RunID:           "run-1",
		SentAt:          time.Now().UTC(),
	}
	s.Require().NoError(s.reminderRepo.Record(s.ctx, delivery))

	delivered, err = s.reminderRepo.Delivered(s.ctx, project.ID, "a@example.com", date)
	s.Require().NoError(err)
	s.Require().True(delivered)

	// a rescheduled project is a different reminder
	delivered, err = s.reminderRepo.Delivered(s.ctx, project.ID, "a@example.com", date.AddDays(1))
	s.Require().NoError(err)
	s.Require().False(delivered)
}

func (s *ReminderRepositoryTestSuite) TestRecordTwiceIsNoop() {
	project := s.createProjectStarting("apollo", datePtr(2024, time.January, 3))
	for _, run := range []string{"run-1", "run-2"} {
		s.Require().NoError(s.reminderRepo.Record(s.ctx, &models.ReminderDelivery{
			ProjectID:       project.ID,
			Email:           "a@example.com",
			RealizationDate: *project.RealizationDate,
			RunID:           run,
			SentAt:          time.Now().UTC(),
		}))
	}

	deliveries, err := s.reminderRepo.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Len(deliveries, 1)
	s.Require().Equal("run-1", deliveries[0].RunID)
}

func TestReminderRepository(t *testing.T) {
	suite.Run(t, new(ReminderRepositoryTestSuite))
}
