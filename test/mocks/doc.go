// Package mocks provides testify mocks for the external services used by the reminder job:
// the mail transport and the project and collaborator stores.
package mocks
