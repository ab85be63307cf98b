package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/repository"
)

// TaskService is the employee-facing task surface. Operations on a
// concrete task require a TaskAssignment link for the actor.
type TaskService struct {
	taskRepo repository.TaskRepository
	refRepo  repository.ReferenceRepository
	access   *AccessEvaluator
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, refRepo repository.ReferenceRepository, access *AccessEvaluator) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		refRepo:  refRepo,
		access:   access,
	}
}

// ListUserTasks returns the tasks assigned to the actor, with project
// summaries attached.
func (s *TaskService) ListUserTasks(actor *models.User) ([]models.TaskAssignment, error) {
	assignments, err := s.taskRepo.ListAssignmentsByUser(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// GetTask returns a task the actor is assigned to.
func (s *TaskService) GetTask(actor *models.User, taskID uint64) (*models.Task, error) {
	return s.access.RequireTaskParticipant(actor, taskID)
}

// GetTaskAssignees returns the users assigned to a task the actor is
// assigned to.
func (s *TaskService) GetTaskAssignees(actor *models.User, taskID uint64) ([]models.TaskAssignment, error) {
	if _, err := s.access.RequireTaskParticipant(actor, taskID); err != nil {
		return nil, err
	}

	assignees, err := s.taskRepo.ListAssignees(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignees: %w", err)
	}
	return assignees, nil
}

// ChangeTaskStatus updates the status of a task the actor is assigned to.
// The referenced status must exist; otherwise the task stays unchanged.
func (s *TaskService) ChangeTaskStatus(actor *models.User, taskID, statusID uint64) error {
	if _, err := s.access.RequireTaskParticipant(actor, taskID); err != nil {
		return err
	}

	if _, err := s.refRepo.FindTaskStatusByID(statusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskStatusNotFound
		}
		return fmt.Errorf("failed to find task status: %w", err)
	}

	if err := s.taskRepo.UpdateStatus(taskID, statusID); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return nil
}
