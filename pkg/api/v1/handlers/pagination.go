package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/internal/db/models"
)

// getPaginationOptions returns a ListOptions struct for the page query parameter, 1 when absent
func getPaginationOptions(c *fiber.Ctx) (*models.ListOptions, bool) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return nil, false
	}

	return &models.ListOptions{
		Limit:  models.DefaultLimit,
		Offset: (page - 1) * models.DefaultLimit,
	}, true
}
