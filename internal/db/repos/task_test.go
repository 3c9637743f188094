package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/models"
)

type TaskRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *TaskRepositoryTestSuite) TestCreateRefreshesProgress() {
	project := s.createTestProject(models.Task{Title: "a", Completed: true})

	progress, err := s.taskRepo.Create(s.ctx, &models.Task{ProjectID: project.ID, Title: "b"})
	s.Require().NoError(err)
	s.Require().Equal(50, progress)

	stored, err := s.projectRepo.Get(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Equal(50, stored.Progress)
}

func (s *TaskRepositoryTestSuite) TestCreateForUnknownProject() {
	_, err := s.taskRepo.Create(s.ctx, &models.Task{ProjectID: "missing", Title: "b"})
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *TaskRepositoryTestSuite) TestToggle() {
	project := s.createTestProject(models.Task{Title: "a"}, models.Task{Title: "b"}, models.Task{Title: "c"})
	taskID := project.Tasks[0].ID

	task, progress, err := s.taskRepo.Toggle(s.ctx, project.ID, taskID)
	s.Require().NoError(err)
	s.Require().True(task.Completed)
	s.Require().Equal(33, progress)

	task, progress, err = s.taskRepo.Toggle(s.ctx, project.ID, taskID)
	s.Require().NoError(err)
	s.Require().False(task.Completed)
	s.Require().Equal(0, progress)

	_, _, err = s.taskRepo.Toggle(s.ctx, project.ID, "missing")
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *TaskRepositoryTestSuite) TestDeleteRefreshesProgress() {
	project := s.createTestProject(models.Task{Title: "a", Completed: true}, models.Task{Title: "b"})

	progress, err := s.taskRepo.Delete(s.ctx, project.ID, project.Tasks[1].ID)
	s.Require().NoError(err)
	s.Require().Equal(100, progress)

	progress, err = s.taskRepo.Delete(s.ctx, project.ID, project.Tasks[0].ID)
	s.Require().NoError(err)
	s.Require().Equal(0, progress)

	_, err = s.taskRepo.Delete(s.ctx, project.ID, project.Tasks[0].ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *TaskRepositoryTestSuite) TestGetScopedToProject() {
	project := s.createTestProject(models.Task{Title: "a"})
	other := s.createTestProject()

	_, err := s.taskRepo.Get(s.ctx, project.ID, project.Tasks[0].ID)
	s.Require().NoError(err)
	_, err = s.taskRepo.Get(s.ctx, other.ID, project.Tasks[0].ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTaskRepository(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
