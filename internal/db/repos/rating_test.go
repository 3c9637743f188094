package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/taskboard/taskboard/internal/db/models"
)

type RatingRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *RatingRepositoryTestSuite) TestUpsertKeepsOneRatingPerEmail() {
	project := s.createTestProject()

	first := &models.Rating{ProjectID: project.ID, Email: "alice@example.com", Score: 2}
	s.Require().NoError(s.ratingRepo.Upsert(s.ctx, first))

	again := &models.Rating{ProjectID: project.ID, Email: "Alice@example.com", Score: 5}
	s.Require().NoError(s.ratingRepo.Upsert(s.ctx, again))
	s.Require().Equal(first.ID, again.ID)

	ratings, err := s.ratingRepo.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Len(ratings, 1)
	s.Require().Equal(5, ratings[0].Score)
}

func (s *RatingRepositoryTestSuite) TestSummary() {
	project := s.createTestProject()

	summary, err := s.ratingRepo.Summary(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Equal(RatingSummary{}, summary)

	for email, score := range map[string]int{"a@example.com": 5, "b@example.com": 4, "c@example.com": 3} {
		s.Require().NoError(s.ratingRepo.Upsert(s.ctx, &models.Rating{ProjectID: project.ID, Email: email, Score: score}))
	}

	summary, err = s.ratingRepo.Summary(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Equal(int64(3), summary.Count)
	s.Require().InDelta(4.0, summary.Average, 0.0001)
}

func (s *RatingRepositoryTestSuite) TestInvalidScore() {
	project := s.createTestProject()
	for _, score := range []int{0, 6} {
		err := s.ratingRepo.Upsert(s.ctx, &models.Rating{ProjectID: project.ID, Email: "a@example.com", Score: score})
		s.Require().ErrorIs(err, models.ErrInvalidScore)
	}
}

func TestRatingRepository(t *testing.T) {
	suite.Run(t, new(RatingRepositoryTestSuite))
}
