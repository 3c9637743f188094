package models

import (
	"errors"
	"net/mail"
	"strings"

	"gorm.io/gorm"
)

// ErrInvalidEmail is returned for an address that does not parse
var ErrInvalidEmail = errors.New("invalid email address")

// Collaborator is an email address invited to a project. It receives reminder emails.
type Collaborator struct {
	Base
	ProjectID string `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_collaborators_project_email"`
	Email     string `json:"email" gorm:"not null;uniqueIndex:idx_collaborators_project_email"`
}

// NormalizeEmail trims and lower-cases an address and checks that it parses as a bare address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// BeforeSave is a GORM hook that normalizes the email before it hits the unique index
func (c *Collaborator) BeforeSave(_ *gorm.DB) error {
	email, err := NormalizeEmail(c.Email)
	if err != nil {
		return err
	}
	c.Email = email
	return nil
}
