package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/internal/logger"
	"github.com/taskboard/taskboard/internal/reminder"
)

// ReminderRunner runs the reminder batch once
type ReminderRunner interface {
	Run(ctx context.Context) (*reminder.Summary, error)
}

// DispatchResponse is the body returned by a reminder run
type DispatchResponse struct {
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details string            `json:"details,omitempty"`
	Summary *reminder.Summary `json:"summary,omitempty"`
}

// ReminderHandler triggers reminder runs over HTTP
type ReminderHandler struct {
	runner ReminderRunner
}

// NewReminderHandler creates a new ReminderHandler instance
func NewReminderHandler(runner ReminderRunner) *ReminderHandler {
	return &ReminderHandler{
		runner: runner,
	}
}

// DispatchReminders runs the reminder batch and reports what was sent
func (h *ReminderHandler) DispatchReminders(c *fiber.Ctx) error {
	summary, err := h.runner.Run(c.Context())
	if err != nil {
		status := fiber.StatusInternalServerError
		msg := ErrMsgRemindersFailed
		if reminder.IsRunInProgress(err) {
			status = fiber.StatusConflict
			msg = ErrMsgReminderRunInFlight
		} else {
			logger.Errorf("Error sending reminder emails: %v", err)
		}
		return c.Status(status).JSON(DispatchResponse{
			Error:   msg,
			Details: err.Error(),
			Summary: summary,
		})
	}

	return c.JSON(DispatchResponse{
		Message: MsgRemindersSent,
		Summary: summary,
	})
}
