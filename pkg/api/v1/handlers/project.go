package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/internal/db/models"
)

// ProjectListResponse is one page of projects
type ProjectListResponse struct {
	Projects []models.Project `json:"projects"`
	Page     int              `json:"page"`
}

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	*APIHandler
}

// NewProjectHandler creates a new ProjectHandler instance
func NewProjectHandler(api *APIHandler) *ProjectHandler {
	return &ProjectHandler{
		APIHandler: api,
	}
}

// ListProjects returns a page of projects, newest first
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	opts, ok := getPaginationOptions(c)
	if !ok {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidPage, nil)
	}

	projects, err := h.project.List(c.Context(), opts)
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgProjListFailed, err.Error())
	}
	return c.JSON(ProjectListResponse{
		Projects: projects,
		Page:     c.QueryInt("page", 1),
	})
}

// GetProject returns a project with its tasks and rating summary
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	project, err := h.project.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgProjGetFailed)
	}
	return c.JSON(project)
}

// CreateProject creates a project and its initial checklist
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var params ProjectCreateParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err.Error())
	}
	if err := params.Validate(); err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgProjCreateFailed)
	}

	project := &models.Project{
		Name:            params.Name,
		Description:     params.Description,
		RealizationDate: params.RealizationDate,
	}
	if err := h.project.Create(c.Context(), project, params.Tasks); err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgProjCreateFailed)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject changes the fields present in the request body
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	var params ProjectUpdateParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err.Error())
	}
	if err := params.Validate(); err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgProjUpdateFailed)
	}

	project, err := h.project.Update(c.Context(), c.Params("id"), params.toUpdate())
	if err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgProjUpdateFailed)
	}
	return c.JSON(project)
}

// DeleteProject deletes a project with its tasks, collaborators and ratings
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	if err := h.project.Delete(c.Context(), c.Params("id")); err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgProjDeleteFailed)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
