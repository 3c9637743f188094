package repos

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/test/testdb"
)

// DBRepositoryTestSuite provides a base test suite for repository tests
type DBRepositoryTestSuite struct {
	suite.Suite
	db               *gorm.DB
	ctx              context.Context
	projectRepo      *ProjectRepository
	taskRepo         *TaskRepository
	collaboratorRepo *CollaboratorRepository
	ratingRepo       *RatingRepository
	reminderRepo     *ReminderRepository
	counter          int
}

func (s *DBRepositoryTestSuite) SetupTest() {
	s.db = testdb.New(s.T())
	s.projectRepo = NewProjectRepository(s.db)
	s.taskRepo = NewTaskRepository(s.db)
	s.collaboratorRepo = NewCollaboratorRepository(s.db)
	s.ratingRepo = NewRatingRepository(s.db)
	s.reminderRepo = NewReminderRepository(s.db)
	s.ctx = context.Background()
}

// Helper methods for creating test data

func (s *DBRepositoryTestSuite) randomProject() *models.Project {
	s.counter++
	return &models.Project{
		Name:        fmt.Sprintf("test-project-%d", s.counter),
		Description: "Test project",
		Status:      models.ProjectStatusNotStarted,
	}
}

func (s *DBRepositoryTestSuite) createTestProject(tasks ...models.Task) *models.Project {
	project := s.randomProject()
	project.Tasks = tasks
	s.Require().NoError(s.projectRepo.Create(s.ctx, project))
	return project
}

func (s *DBRepositoryTestSuite) createProjectStarting(name string, date *models.Date) *models.Project {
	project := &models.Project{Name: name, RealizationDate: date}
	s.Require().NoError(s.projectRepo.Create(s.ctx, project))
	return project
}

func datePtr(y int, m time.Month, d int) *models.Date {
	date := models.NewDate(y, m, d)
	return &date
}

// TestDBRepository runs the base suite to verify the setup itself does not panic
func TestDBRepository(t *testing.T) {
	suite.Run(t, new(DBRepositoryTestSuite))
}
