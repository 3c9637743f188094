package repos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/models"
)

type ProjectRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *ProjectRepositoryTestSuite) TestCreateProject() {
	project := s.createTestProject(
		models.Task{Title: "design"},
		models.Task{Title: "build", Completed: true},
		models.Task{Title: "ship"},
	)
	s.Require().NotEmpty(project.ID)
	s.Require().Equal(33, project.Progress)

	created, err := s.projectRepo.Get(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Equal(project.Name, created.Name)
	s.Require().Equal(models.ProjectStatusNotStarted, created.Status)
	s.Require().Equal(33, created.Progress)
	s.Require().Len(created.Tasks, 3)
	for _, task := range created.Tasks {
		s.Require().Equal(project.ID, task.ProjectID)
	}
}

func (s *ProjectRepositoryTestSuite) TestCreateProjectRejectsBlankName() {
	err := s.projectRepo.Create(s.ctx, &models.Project{Name: " "})
	s.Require().ErrorIs(err, models.ErrProjectNameRequired)
}

func (s *ProjectRepositoryTestSuite) TestCreateProjectRollsBackOnBadTask() {
	project := s.randomProject()
	project.Tasks = []models.Task{{Title: "ok"}, {Title: ""}}
	s.Require().Error(s.projectRepo.Create(s.ctx, project))

	projects, err := s.projectRepo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Empty(projects)
}

func (s *ProjectRepositoryTestSuite) TestGetProjectNotFound() {
	_, err := s.projectRepo.Get(s.ctx, "00000000-0000-0000-0000-000000000000")
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *ProjectRepositoryTestSuite) TestListProjects() {
	for i := 0; i < 3; i++ {
		s.createTestProject()
	}

	projects, err := s.projectRepo.List(s.ctx, &models.ListOptions{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(projects, 2)

	projects, err = s.projectRepo.List(s.ctx, &models.ListOptions{Limit: 10, Offset: 2})
	s.Require().NoError(err)
	s.Require().Len(projects, 1)
}

func (s *ProjectRepositoryTestSuite) TestListStartingBetween() {
	s.createProjectStarting("before", datePtr(2023, time.December, 31))
	s.createProjectStarting("first-day", datePtr(2024, time.January, 1))
	s.createProjectStarting("inside", datePtr(2024, time.January, 3))
	s.createProjectStarting("last-day", datePtr(2024, time.January, 4))
	s.createProjectStarting("after", datePtr(2024, time.January, 10))
	s.createProjectStarting("undated", nil)

	from := models.NewDate(2024, time.January, 1)
	projects, err := s.projectRepo.ListStartingBetween(s.ctx, from, from.AddDays(3))
	s.Require().NoError(err)

	var names []string
	for _, p := range projects {
		names = append(names, p.Name)
	}
	s.Require().Equal([]string{"first-day", "inside", "last-day"}, names)
	s.Require().Equal("2024-01-03", projects[1].RealizationDate.String())
}

func (s *ProjectRepositoryTestSuite) TestUpdateProject() {
	project := s.createTestProject(models.Task{Title: "a", Completed: true})

	project.Name = "renamed"
	project.Status = models.ProjectStatusInProgress
	project.RealizationDate = datePtr(2024, time.May, 1)
	s.Require().NoError(s.projectRepo.Update(s.ctx, project))

	updated, err := s.projectRepo.Get(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Equal("renamed", updated.Name)
	s.Require().Equal(models.ProjectStatusInProgress, updated.Status)
	s.Require().Equal("2024-05-01", updated.RealizationDate.String())
	s.Require().Equal(100, updated.Progress, "progress is not an editable field")

	updated.RealizationDate = nil
	s.Require().NoError(s.projectRepo.Update(s.ctx, updated))
	cleared, err := s.projectRepo.Get(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Nil(cleared.RealizationDate)
}

func (s *ProjectRepositoryTestSuite) TestDeleteProjectCascades() {
	project := s.createTestProject(models.Task{Title: "a"})
	s.Require().NoError(s.collaboratorRepo.Create(s.ctx, &models.Collaborator{ProjectID: project.ID, Email: "a@example.com"}))
	s.Require().NoError(s.ratingRepo.Upsert(s.ctx, &models.Rating{ProjectID: project.ID, Email: "a@example.com", Score: 4}))

	s.Require().NoError(s.projectRepo.Delete(s.ctx, project.ID))

	_, err := s.projectRepo.Get(s.ctx, project.ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	tasks, err := s.taskRepo.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Empty(tasks)
	collaborators, err := s.collaboratorRepo.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Empty(collaborators)

	s.Require().ErrorIs(s.projectRepo.Delete(s.ctx, project.ID), gorm.ErrRecordNotFound)
}

func TestProjectRepository(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
