package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// CollaboratorHandler handles HTTP requests for project collaborators
type CollaboratorHandler struct {
	*APIHandler
}

// NewCollaboratorHandler creates a new CollaboratorHandler instance
func NewCollaboratorHandler(api *APIHandler) *CollaboratorHandler {
	return &CollaboratorHandler{
		APIHandler: api,
	}
}

// ListCollaborators returns the collaborators of a project
func (h *CollaboratorHandler) ListCollaborators(c *fiber.Ctx) error {
	collaborators, err := h.collaborator.List(c.Context(), c.Params("id"))
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCollabListFailed, err.Error())
	}
	return c.JSON(collaborators)
}

// CreateCollaborator invites an email address to a project
func (h *CollaboratorHandler) CreateCollaborator(c *fiber.Ctx) error {
	var params CollaboratorCreateParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err.Error())
	}
	if err := params.Validate(); err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgCollabCreateFailed)
	}

	collaborator, err := h.collaborator.Invite(c.Context(), c.Params("id"), params.Email)
	if err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgCollabCreateFailed)
	}
	return c.Status(fiber.StatusCreated).JSON(collaborator)
}

// DeleteCollaborator removes a collaborator from a project
func (h *CollaboratorHandler) DeleteCollaborator(c *fiber.Ctx) error {
	err := h.collaborator.Remove(c.Context(), c.Params("id"), c.Params("collaboratorID"))
	if err != nil {
		return respondWithServiceError(c, err, ErrMsgCollabNotFound, ErrMsgCollabDeleteFailed)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
