package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles HTTP requests for the tasks of a project
type TaskHandler struct {
	*APIHandler
}

// NewTaskHandler creates a new TaskHandler instance
func NewTaskHandler(api *APIHandler) *TaskHandler {
	return &TaskHandler{
		APIHandler: api,
	}
}

// CreateTask adds a task to a project and returns it with the new project progress
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var params TaskCreateParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err.Error())
	}
	if err := params.Validate(); err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgTaskCreateFailed)
	}

	change, err := h.task.Add(c.Context(), c.Params("id"), params.Title)
	if err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgTaskCreateFailed)
	}
	return c.Status(fiber.StatusCreated).JSON(change)
}

// ToggleTask flips a task between done and not done
func (h *TaskHandler) ToggleTask(c *fiber.Ctx) error {
	change, err := h.task.Toggle(c.Context(), c.Params("id"), c.Params("taskID"))
	if err != nil {
		return respondWithServiceError(c, err, ErrMsgTaskNotFound, ErrMsgTaskToggleFailed)
	}
	return c.JSON(change)
}

// DeleteTask removes a task and returns the new project progress
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	change, err := h.task.Delete(c.Context(), c.Params("id"), c.Params("taskID"))
	if err != nil {
		return respondWithServiceError(c, err, ErrMsgTaskNotFound, ErrMsgTaskDeleteFailed)
	}
	return c.JSON(change)
}
