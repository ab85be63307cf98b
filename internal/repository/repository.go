package repository

import (
	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID with role and position loaded
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by unique username
	FindByUsername(username string) (*models.User, error)

	// List retrieves users with pagination, role and position loaded
	List(params utils.PaginationParams) ([]models.User, int64, error)

	// Update persists changed user fields
	Update(user *models.User) error

	// Delete removes a user; memberships and assignments cascade
	Delete(id uint64) error

	// Count returns the total number of users
	Count() (int64, error)
}

// ReferenceRepository defines the interface for the seeded lookup tables
type ReferenceRepository interface {
	ListRoles() ([]models.Role, error)
	ListPositions() ([]models.Position, error)
	ListTaskStatuses() ([]models.TaskStatus, error)
	ListTaskPriorities() ([]models.TaskPriority, error)
	ListProjectStatuses() ([]models.ProjectStatus, error)

	// FindRoleByID and friends resolve a single reference row; they return
	// gorm.ErrRecordNotFound for dangling ids
	FindRoleByID(id uint64) (*models.Role, error)
	FindRoleByName(name models.RoleName) (*models.Role, error)
	FindPositionByID(id uint64) (*models.Position, error)
	FindTaskStatusByID(id uint64) (*models.TaskStatus, error)
	FindTaskPriorityByID(id uint64) (*models.TaskPriority, error)
	FindProjectStatusByID(id uint64) (*models.ProjectStatus, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with its status loaded
	FindByID(id uint64) (*models.Project, error)

	// List retrieves projects with pagination, statuses loaded
	List(params utils.PaginationParams) ([]models.Project, int64, error)

	// Update persists changed project fields
	Update(project *models.Project) error

	// Delete removes a project; tasks and memberships cascade
	Delete(id uint64) error

	// AddMember links a user to a project
	AddMember(member *models.ProjectMember) error

	// RemoveMember unlinks a user from a project
	RemoveMember(projectID, userID uint64) error

	// FindMember finds a specific membership link
	FindMember(projectID, userID uint64) (*models.ProjectMember, error)

	// ListMembers lists the members of a project with user details loaded
	ListMembers(projectID uint64) ([]models.ProjectMember, error)

	// ListMembershipsByUser lists a user's memberships with projects loaded
	ListMembershipsByUser(userID uint64) ([]models.ProjectMember, error)

	// ListTasks lists the tasks belonging to a project
	ListTasks(projectID uint64) ([]models.Task, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with status, priority and project loaded
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks with pagination and relations loaded
	List(params utils.PaginationParams) ([]models.Task, int64, error)

	// Update persists changed task fields
	Update(task *models.Task) error

	// UpdateStatus changes only the task status reference
	UpdateStatus(taskID, statusID uint64) error

	// Delete removes a task; assignments cascade
	Delete(id uint64) error

	// AddAssignment links a user to a task
	AddAssignment(assignment *models.TaskAssignment) error

	// RemoveAssignment unlinks a user from a task
	RemoveAssignment(taskID, userID uint64) error

	// FindAssignment finds a specific assignment link
	FindAssignment(taskID, userID uint64) (*models.TaskAssignment, error)

	// ListAssignees lists a task's assignments with user details loaded
	ListAssignees(taskID uint64) ([]models.TaskAssignment, error)

	// ListAssignmentsByUser lists a user's assignments with tasks loaded
	ListAssignmentsByUser(userID uint64) ([]models.TaskAssignment, error)
}

// TokenRepository defines the interface for revoked-token storage
type TokenRepository interface {
	// Blacklist stores a revoked token until its expiry
	Blacklist(token *models.BlacklistToken) error

	// IsBlacklisted reports whether a token has been revoked
	IsBlacklisted(token string) (bool, error)
}
