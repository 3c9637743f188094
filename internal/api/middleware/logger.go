// Package middleware holds the fiber middleware of the API server
package middleware

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/internal/logger"
)

// Logger returns a middleware that logs HTTP requests
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Continue chain
		err := c.Next()

		stop := time.Now()
		logger.InfoWithFields("Request", logger.Fields{
			"timestamp": stop.Format("2006/01/02 - 15:04:05"),
			"status":    c.Response().StatusCode(),
			"latency":   stop.Sub(start).String(),
			"ip":        c.IP(),
			"method":    c.Method(),
			"path":      c.Path(),
			"handler":   c.Route().Name,
		})

		return err
	}
}
