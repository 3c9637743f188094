package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/repos"
	"github.com/taskboard/taskboard/test/testdb"
)

// TestSetup contains all the components needed for service tests
type TestSetup struct {
	DB                  *gorm.DB
	ProjectService      *Project
	TaskService         *Task
	CollaboratorService *Collaborator
	RatingService       *Rating
	ctx                 context.Context
}

// NewTestSetup wires real services over an in-memory database
func NewTestSetup(t *testing.T) *TestSetup {
	db := testdb.New(t)
	ratingRepo := repos.NewRatingRepository(db)

	return &TestSetup{
		DB:                  db,
		ProjectService:      NewProjectService(repos.NewProjectRepository(db), ratingRepo),
		TaskService:         NewTaskService(repos.NewTaskRepository(db)),
		CollaboratorService: NewCollaboratorService(repos.NewCollaboratorRepository(db)),
		RatingService:       NewRatingService(ratingRepo),
		ctx:                 context.Background(),
	}
}
