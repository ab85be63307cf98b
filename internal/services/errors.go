package services

import "errors"

// Authorization failures
var (
	ErrInsufficientRole   = errors.New("insufficient privilege")
	ErrSelfModification   = errors.New("managers may not modify or delete their own account")
	ErrNotProjectMember   = errors.New("user is not a participant of the project")
	ErrNotTaskParticipant = errors.New("user is not a participant of the task")
)

// Missing entities
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrProjectNotFound       = errors.New("project not found")
	ErrTaskNotFound          = errors.New("task not found")
	ErrRoleNotFound          = errors.New("role not found")
	ErrPositionNotFound      = errors.New("position not found")
	ErrTaskStatusNotFound    = errors.New("task status not found")
	ErrTaskPriorityNotFound  = errors.New("task priority not found")
	ErrProjectStatusNotFound = errors.New("project status not found")
)

// Relationship conflicts
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMemberAlreadyAdded = errors.New("user is already a member of the project")
	ErrMemberNotInProject = errors.New("user is not a member of the project")
	ErrAlreadyAssigned    = errors.New("user is already assigned to the task")
	ErrAssignmentNotFound = errors.New("user is not assigned to the task")
)

// Authentication failures
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRegistrationClosed = errors.New("registration is closed")
	ErrPasswordTooShort   = errors.New("password too short")
)
