// Package handlers provides HTTP request handling
package handlers

// Common error messages
const (
	ErrMsgInvalidReqBody = "Invalid request body"
	ErrMsgInvalidPage    = "Page must be a positive number from 1"
)

// Project error messages
const (
	ErrMsgProjNameRequired = "Project name is required"
	ErrMsgProjNotFound     = "Project not found"
	ErrMsgProjCreateFailed = "Failed to create project"
	ErrMsgProjListFailed   = "Failed to list projects"
	ErrMsgProjGetFailed    = "Failed to get project"
	ErrMsgProjUpdateFailed = "Failed to update project"
	ErrMsgProjDeleteFailed = "Failed to delete project"
)

// Task error messages
const (
	ErrMsgTaskTitleRequired = "Task title is required"
	ErrMsgTaskNotFound      = "Task not found"
	ErrMsgTaskCreateFailed  = "Failed to create task"
	ErrMsgTaskToggleFailed  = "Failed to toggle task"
	ErrMsgTaskDeleteFailed  = "Failed to delete task"
)

// Collaborator error messages
const (
	ErrMsgInvalidEmail       = "Invalid email address"
	ErrMsgCollabExists       = "Collaborator already invited to this project"
	ErrMsgCollabNotFound     = "Collaborator not found"
	ErrMsgCollabCreateFailed = "Failed to add collaborator"
	ErrMsgCollabListFailed   = "Failed to list collaborators"
	ErrMsgCollabDeleteFailed = "Failed to remove collaborator"
)

// Rating error messages
const (
	ErrMsgInvalidScore     = "Score must be between 1 and 5"
	ErrMsgRatingSaveFailed = "Failed to save rating"
	ErrMsgRatingListFailed = "Failed to list ratings"
)

// Reminder messages
const (
	MsgRemindersSent          = "Reminder emails sent successfully."
	ErrMsgRemindersFailed     = "Error sending reminder emails."
	ErrMsgReminderRunInFlight = "A reminder run is already in progress."
)
