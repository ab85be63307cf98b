package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/repository"
)

// AccessEvaluator decides whether an actor may perform an operation on a
// target entity. Two gates exist: the role gate used by the manager
// surface, where the role check always precedes any existence check, and
// the membership gate used by the employee surface, where a missing
// target yields not-found before membership is consulted.
type AccessEvaluator struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

// NewAccessEvaluator creates a new AccessEvaluator
func NewAccessEvaluator(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) *AccessEvaluator {
	return &AccessEvaluator{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// RequireManager passes only for actors holding the manager role.
func (e *AccessEvaluator) RequireManager(actor *models.User) error {
	switch actor.Role.Name {
	case models.RoleManager:
		return nil
	default:
		return ErrInsufficientRole
	}
}

// RequireNotSelf denies managers operating on their own user row. It is
// checked in addition to, never instead of, the role gate.
func (e *AccessEvaluator) RequireNotSelf(actor *models.User, targetUserID uint64) error {
	if actor.ID == targetUserID {
		return ErrSelfModification
	}
	return nil
}

// RequireProjectMember grants read access to a project for its members.
// A missing project reports not-found before membership is evaluated.
func (e *AccessEvaluator) RequireProjectMember(actor *models.User, projectID uint64) (*models.Project, error) {
	project, err := e.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if _, err := e.projectRepo.FindMember(projectID, actor.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotProjectMember
		}
		return nil, fmt.Errorf("failed to check project membership: %w", err)
	}

	return project, nil
}

// RequireTaskParticipant grants access to a task for its assigned users.
// A missing task reports not-found before the assignment is evaluated.
func (e *AccessEvaluator) RequireTaskParticipant(actor *models.User, taskID uint64) (*models.Task, error) {
	task, err := e.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if _, err := e.taskRepo.FindAssignment(taskID, actor.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotTaskParticipant
		}
		return nil, fmt.Errorf("failed to check task assignment: %w", err)
	}

	return task, nil
}
