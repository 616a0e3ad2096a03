// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")

	// Employee-related errors
	ErrEmployeeNotFound = errors.New("employee not found")

	// Team-related errors
	ErrTeamNotFound = errors.New("team not found")

	// Assignment-related errors
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAlreadyAssigned    = errors.New("employee is already assigned to this team")
)
