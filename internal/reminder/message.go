package reminder

import (
	"fmt"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/mail"
)

// NewMessage composes the reminder sent to one collaborator of a project
func NewMessage(from string, project models.Project, to string) mail.Message {
	date := ""
	if project.RealizationDate != nil {
		date = project.RealizationDate.String()
	}
	return mail.Message{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("Reminder: project %s starts soon", project.Name),
		Body: fmt.Sprintf("Hello,\n\nThe project %s will start on %s.\n\nBest regards,\nThe team",
			project.Name, date),
	}
}
