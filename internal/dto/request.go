package dto

import (
	"fmt"
	"time"
)

// RegisterRequest is the payload for bootstrap registration
type RegisterRequest struct {
	Username   string  `json:"username" binding:"required"`
	Password   string  `json:"password" binding:"required"`
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Patronymic *string `json:"patronymic"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest is the payload for creating an account
type CreateUserRequest struct {
	Username   string  `json:"username" binding:"required"`
	Password   string  `json:"password" binding:"required"`
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Patronymic *string `json:"patronymic"`
	PositionID *uint64 `json:"position_id"`
}

// UpdateUserRequest is the payload for replacing an account's profile
type UpdateUserRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Patronymic *string `json:"patronymic"`
	RoleID     uint64  `json:"role_id" binding:"required"`
	PositionID *uint64 `json:"position_id"`
}

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	DueDate     *string `json:"due_date"`
}

// UpdateProjectRequest is the payload for replacing a project
type UpdateProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	DueDate     *string `json:"due_date"`
	StatusID    uint64  `json:"status_id" binding:"required"`
}

// CreateTaskRequest is the payload for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	DueDate     *string `json:"due_date"`
}

// UpdateTaskRequest is the payload for replacing a task
type UpdateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	DueDate     *string `json:"due_date"`
	StatusID    uint64  `json:"status_id" binding:"required"`
	PriorityID  uint64  `json:"priority_id" binding:"required"`
	ProjectID   *uint64 `json:"project_id"`
}

// ChangeTaskStatusRequest is the payload for moving a task between statuses
type ChangeTaskStatusRequest struct {
	StatusID uint64 `json:"status_id" binding:"required"`
}

// ParseDate parses an optional date-only request field
func ParseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *s)
	}
	return &t, nil
}
