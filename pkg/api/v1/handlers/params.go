package handlers

import (
	"strings"

	"github.com/taskboard/taskboard/internal/db/models"
	"github.com/taskboard/taskboard/internal/services"
)

// ProjectCreateParams is the body of a project creation request
type ProjectCreateParams struct {
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	RealizationDate *models.Date `json:"realization_date,omitempty"`
	// Tasks are the titles of the initial checklist; blank titles are ignored
	Tasks []string `json:"tasks,omitempty"`
}

// Validate validates the parameters
func (p ProjectCreateParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return models.ErrProjectNameRequired
	}
	return nil
}

// ProjectUpdateParams is the body of a project update request. Absent fields are left as they are.
type ProjectUpdateParams struct {
	Name                 *string               `json:"name,omitempty"`
	Description          *string               `json:"description,omitempty"`
	Status               *models.ProjectStatus `json:"status,omitempty"`
	RealizationDate      *models.Date          `json:"realization_date,omitempty"`
	ClearRealizationDate bool                  `json:"clear_realization_date,omitempty"`
}

// Validate validates the parameters
func (p ProjectUpdateParams) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return models.ErrProjectNameRequired
	}
	return nil
}

func (p ProjectUpdateParams) toUpdate() services.ProjectUpdate {
	return services.ProjectUpdate{
		Name:                 p.Name,
		Description:          p.Description,
		Status:               p.Status,
		RealizationDate:      p.RealizationDate,
		ClearRealizationDate: p.ClearRealizationDate,
	}
}

// TaskCreateParams is the body of a task creation request
type TaskCreateParams struct {
	Title string `json:"title"`
}

// Validate validates the parameters
func (p TaskCreateParams) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return models.ErrTaskTitleRequired
	}
	return nil
}

// CollaboratorCreateParams is the body of an invitation request
type CollaboratorCreateParams struct {
	Email string `json:"email"`
}

// Validate validates the parameters
func (p CollaboratorCreateParams) Validate() error {
	_, err := models.NormalizeEmail(p.Email)
	return err
}

// RatingParams is the body of a rating request
type RatingParams struct {
	Email string `json:"email"`
	Score int    `json:"score"`
}

// Validate validates the parameters
func (p RatingParams) Validate() error {
	if _, err := models.NormalizeEmail(p.Email); err != nil {
		return err
	}
	if p.Score < models.MinScore || p.Score > models.MaxScore {
		return models.ErrInvalidScore
	}
	return nil
}
