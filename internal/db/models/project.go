package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"
)

// ErrProjectNameRequired is returned when a project is saved without a name
var ErrProjectNameRequired = errors.New("project name is required")

// ProjectStatus represents where a project stands
type ProjectStatus string

// Project status constants
const (
	// ProjectStatusNotStarted is the status of a newly created project
	ProjectStatusNotStarted ProjectStatus = "not_started"
	// ProjectStatusInProgress indicates work on the project has begun
	ProjectStatusInProgress ProjectStatus = "in_progress"
	// ProjectStatusCompleted indicates the project is done
	ProjectStatusCompleted ProjectStatus = "completed"
)

// String returns the string representation of the project status
func (s ProjectStatus) String() string {
	return string(s)
}

// ParseProjectStatus converts a string to a ProjectStatus
func ParseProjectStatus(str string) (ProjectStatus, error) {
	switch ProjectStatus(str) {
	case ProjectStatusNotStarted, ProjectStatusInProgress, ProjectStatusCompleted:
		return ProjectStatus(str), nil
	default:
		return "", fmt.Errorf("invalid project status: %s", str)
	}
}

// UnmarshalJSON implements json.Unmarshaler for ProjectStatus
func (s *ProjectStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	status, err := ParseProjectStatus(str)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Project is a tracked project with its task checklist
type Project struct {
	Base
	Name            string        `json:"name" gorm:"not null;index"`
	Description     string        `json:"description" gorm:"type:text"`
	Status          ProjectStatus `json:"status" gorm:"not null;default:not_started;index"`
	Progress        int           `json:"progress" gorm:"not null;default:0"`
	RealizationDate *Date         `json:"realization_date" gorm:"index"`
	Tasks           []Task        `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
}

// Validate ensures that the project data is valid
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrProjectNameRequired
	}
	if _, err := ParseProjectStatus(string(p.Status)); err != nil {
		return err
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100, got %d", p.Progress)
	}
	return nil
}

// BeforeSave is a GORM hook that runs before creating or updating a project
func (p *Project) BeforeSave(_ *gorm.DB) error {
	if p.Status == "" {
		p.Status = ProjectStatusNotStarted
	}
	return p.Validate()
}

// ComputeProgress returns the rounded percentage of completed tasks, 0 when there are none
func ComputeProgress(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}
