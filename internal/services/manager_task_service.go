package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/repository"
	"github.com/teamtrack/project-management-api/internal/utils"
)

// ManagerTaskService administers tasks and their assignments.
type ManagerTaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	refRepo     repository.ReferenceRepository
	access      *AccessEvaluator
}

// NewManagerTaskService creates a new ManagerTaskService.
func NewManagerTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	refRepo repository.ReferenceRepository,
	access *AccessEvaluator,
) *ManagerTaskService {
	return &ManagerTaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		refRepo:     refRepo,
		access:      access,
	}
}

// CreateTaskInput represents the payload for creating a task.
type CreateTaskInput struct {
	Title       string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
}

// UpdateTaskInput represents the payload for updating a task.
type UpdateTaskInput struct {
	Title       string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
	StatusID    uint64
	PriorityID  uint64
	ProjectID   *uint64
}

// ListTasks returns all tasks with project summaries, paginated.
func (s *ManagerTaskService) ListTasks(actor *models.User, params utils.PaginationParams) ([]models.Task, int64, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, 0, err
	}

	tasks, total, err := s.taskRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// GetTask returns a single task with its project summary.
func (s *ManagerTaskService) GetTask(actor *models.User, taskID uint64) (*models.Task, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}
	return s.findTask(taskID)
}

// CreateTask creates a task outside any project, with the default status
// and priority. Placement and classification happen through UpdateTask.
func (s *ManagerTaskService) CreateTask(actor *models.User, input CreateTaskInput) (*models.Task, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	// Reload so the defaulted status and priority associations are
	// populated.
	return s.findTask(task.ID)
}

// UpdateTask replaces the descriptive fields, classification and project
// binding of a task. Every referenced id must exist.
func (s *ManagerTaskService) UpdateTask(actor *models.User, taskID uint64, input UpdateTaskInput) error {
	if err := s.access.RequireManager(actor); err != nil {
		return err
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return err
	}

	if _, err := s.refRepo.FindTaskPriorityByID(input.PriorityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskPriorityNotFound
		}
		return fmt.Errorf("failed to find task priority: %w", err)
	}
	if _, err := s.refRepo.FindTaskStatusByID(input.StatusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskStatusNotFound
		}
		return fmt.Errorf("failed to find task status: %w", err)
	}
	if input.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(*input.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return fmt.Errorf("failed to find project: %w", err)
		}
	}

	task.Title = input.Title
	task.Description = input.Description
	task.StartDate = input.StartDate
	task.DueDate = input.DueDate
	task.StatusID = input.StatusID
	task.PriorityID = input.PriorityID
	task.ProjectID = input.ProjectID
	task.Status = models.TaskStatus{}
	task.Priority = models.TaskPriority{}
	task.Project = nil

	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// DeleteTask removes a task; its assignments go with it.
func (s *ManagerTaskService) DeleteTask(actor *models.User, taskID uint64) error {
	if err := s.access.RequireManager(actor); err != nil {
		return err
	}

	if _, err := s.findTask(taskID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// GetTaskAssignees returns the users assigned to a task.
func (s *ManagerTaskService) GetTaskAssignees(actor *models.User, taskID uint64) ([]models.TaskAssignment, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	if _, err := s.findTask(taskID); err != nil {
		return nil, err
	}

	assignees, err := s.taskRepo.ListAssignees(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignees: %w", err)
	}
	return assignees, nil
}

// AddTaskAssignee links a user to a task. Re-assigning an assigned user
// is a conflict, not a duplicate row.
func (s *ManagerTaskService) AddTaskAssignee(actor *models.User, taskID, userID uint64) error {
	if err := s.access.RequireManager(actor); err != nil {
		return err
	}

	if _, err := s.findTask(taskID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.taskRepo.FindAssignment(taskID, userID); err == nil {
		return ErrAlreadyAssigned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check assignment: %w", err)
	}

	assignment := &models.TaskAssignment{
		TaskID: taskID,
		UserID: userID,
	}
	if err := s.taskRepo.AddAssignment(assignment); err != nil {
		return fmt.Errorf("failed to add assignment: %w", err)
	}
	return nil
}

// RemoveTaskAssignee unlinks a user from a task.
func (s *ManagerTaskService) RemoveTaskAssignee(actor *models.User, taskID, userID uint64) error {
	if err := s.access.RequireManager(actor); err != nil {
		return err
	}

	if _, err := s.findTask(taskID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.taskRepo.FindAssignment(taskID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to check assignment: %w", err)
	}

	if err := s.taskRepo.RemoveAssignment(taskID, userID); err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}

func (s *ManagerTaskService) findTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}
