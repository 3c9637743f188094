package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/db/repos"
	"github.com/taskboard/taskboard/internal/services"
)

// APIHandler holds the services shared by every handler
type APIHandler struct {
	project      *services.Project
	task         *services.Task
	collaborator *services.Collaborator
	rating       *services.Rating
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(
	project *services.Project,
	task *services.Task,
	collaborator *services.Collaborator,
	rating *services.Rating,
) *APIHandler {
	return &APIHandler{
		project:      project,
		task:         task,
		collaborator: collaborator,
		rating:       rating,
	}
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func respondWithError(c *fiber.Ctx, status int, msg string, details interface{}) error {
	return c.Status(status).JSON(ErrorResponse{
		Error:   msg,
		Details: details,
	})
}

// respondWithServiceError maps domain errors to a status code. failedMsg is used for anything
// unexpected, notFoundMsg when the record does not exist.
func respondWithServiceError(c *fiber.Ctx, err error, notFoundMsg, failedMsg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return respondWithError(c, fiber.StatusNotFound, notFoundMsg, nil)
	case errors.Is(err, models.ErrProjectNameRequired):
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgProjNameRequired, nil)
	case errors.Is(err, models.ErrTaskTitleRequired):
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgTaskTitleRequired, nil)
	case errors.Is(err, models.ErrInvalidEmail):
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidEmail, nil)
	case errors.Is(err, models.ErrInvalidScore):
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidScore, nil)
	case errors.Is(err, repos.ErrCollaboratorExists):
		return respondWithError(c, fiber.StatusConflict, ErrMsgCollabExists, nil)
	default:
		return respondWithError(c, fiber.StatusInternalServerError, failedMsg, err.Error())
	}
}
