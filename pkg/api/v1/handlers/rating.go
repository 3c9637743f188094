package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RatingHandler handles HTTP requests for project ratings
type RatingHandler struct {
	*APIHandler
}

// NewRatingHandler creates a new RatingHandler instance
func NewRatingHandler(api *APIHandler) *RatingHandler {
	return &RatingHandler{
		APIHandler: api,
	}
}

// ListRatings returns every rating of a project with the average score
func (h *RatingHandler) ListRatings(c *fiber.Ctx) error {
	ratings, err := h.rating.List(c.Context(), c.Params("id"))
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgRatingListFailed, err.Error())
	}
	return c.JSON(ratings)
}

// RateProject stores the caller's score, replacing an earlier one from the same email
func (h *RatingHandler) RateProject(c *fiber.Ctx) error {
	var params RatingParams
	if err := c.BodyParser(&params); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err.Error())
	}
	if err := params.Validate(); err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgRatingSaveFailed)
	}

	ratings, err := h.rating.Rate(c.Context(), c.Params("id"), params.Email, params.Score)
	if err != nil {
		return respondWithServiceError(c, err, ErrMsgProjNotFound, ErrMsgRatingSaveFailed)
	}
	return c.JSON(ratings)
}
