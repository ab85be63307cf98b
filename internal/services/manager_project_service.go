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

// ManagerProjectService administers projects and their memberships.
type ManagerProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	refRepo     repository.ReferenceRepository
	access      *AccessEvaluator
}

// NewManagerProjectService creates a new ManagerProjectService.
func NewManagerProjectService(
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	refRepo repository.ReferenceRepository,
	access *AccessEvaluator,
) *ManagerProjectService {
	return &ManagerProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		refRepo:     refRepo,
		access:      access,
	}
}

// CreateProjectInput represents the payload for creating a project.
type CreateProjectInput struct {
	Title       string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
}

// UpdateProjectInput represents the payload for updating a project.
type UpdateProjectInput struct {
	Title       string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
	StatusID    uint64
}

// ListProjects returns all projects, paginated.
func (s *ManagerProjectService) ListProjects(actor *models.User, params utils.PaginationParams) ([]models.Project, int64, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, 0, err
	}

	projects, total, err := s.projectRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// GetProject returns a single project by id.
func (s *ManagerProjectService) GetProject(actor *models.User, projectID uint64) (*models.Project, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}
	return s.findProject(projectID)
}

// CreateProject creates a project. The status defaults to the first
// seeded project status.
func (s *ManagerProjectService) CreateProject(actor *models.User, input CreateProjectInput) (*models.Project, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	// Reload so the defaulted status association is populated.
	return s.findProject(project.ID)
}

// UpdateProject replaces the descriptive fields and status of a project.
// A dangling status id fails the whole update.
func (s *ManagerProjectService) UpdateProject(actor *models.User, projectID uint64, input UpdateProjectInput) error {
	if err := s.access.RequireManager(actor); err != nil {
		return err
	}

	project, err := s.findProject(projectID)
	if err != nil {
		return err
	}

	if _, err := s.refRepo.FindProjectStatusByID(input.StatusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectStatusNotFound
		}
		return fmt.Errorf("failed to find project status: %w", err)
	}

	project.Title = input.Title
	project.Description = input.Description
	project.StartDate = input.StartDate
	project.DueDate = input.DueDate
	project.StatusID = input.StatusID
	project.Status = models.ProjectStatus{}

	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// DeleteProject removes a project; its tasks and memberships go with it.
func (s *ManagerProjectService) DeleteProject(actor *models.User, projectID uint64) error {
	if err := s.access.RequireManager(actor); err != nil {
		return err
	}

	if _, err := s.findProject(projectID); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// GetProjectMembers returns the members of a project.
func (s *ManagerProjectService) GetProjectMembers(actor *models.User, projectID uint64) ([]models.ProjectMember, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	if _, err := s.findProject(projectID); err != nil {
		return nil, err
	}

	members, err := s.projectRepo.ListMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	return members, nil
}

// AddProjectMember links a user to a project. Re-adding an existing
// member is a conflict, not a duplicate row.
func (s *ManagerProjectService) AddProjectMember(actor *models.User, projectID, userID uint64) error {
	if err := s.access.RequireManager(actor); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	if _, err := s.findProject(projectID); err != nil {
		return err
	}

	if _, err := s.projectRepo.FindMember(projectID, userID); err == nil {
		return ErrMemberAlreadyAdded
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	member := &models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
	}
	if err := s.projectRepo.AddMember(member); err != nil {
		return fmt.Errorf("failed to add project member: %w", err)
	}
	return nil
}

// RemoveProjectMember unlinks a user from a project.
func (s *ManagerProjectService) RemoveProjectMember(actor *models.User, projectID, userID uint64) error {
	if err := s.access.RequireManager(actor); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	if _, err := s.findProject(projectID); err != nil {
		return err
	}

	if _, err := s.projectRepo.FindMember(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotInProject
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}

	if err := s.projectRepo.RemoveMember(projectID, userID); err != nil {
		return fmt.Errorf("failed to remove project member: %w", err)
	}
	return nil
}

// GetProjectTasks returns the tasks of a project.
func (s *ManagerProjectService) GetProjectTasks(actor *models.User, projectID uint64) ([]models.Task, error) {
	if err := s.access.RequireManager(actor); err != nil {
		return nil, err
	}

	if _, err := s.findProject(projectID); err != nil {
		return nil, err
	}

	tasks, err := s.projectRepo.ListTasks(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}
	return tasks, nil
}

func (s *ManagerProjectService) findProject(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}
