package services

import (
	"fmt"

	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/repository"
)

// ProjectService is the employee-facing project surface. Every operation
// on a concrete project is membership-gated through the access evaluator.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	access      *AccessEvaluator
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, access *AccessEvaluator) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		access:      access,
	}
}

// ListUserProjects returns the projects the actor is a member of.
func (s *ProjectService) ListUserProjects(actor *models.User) ([]models.ProjectMember, error) {
	memberships, err := s.projectRepo.ListMembershipsByUser(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

// GetProject returns a project the actor participates in.
func (s *ProjectService) GetProject(actor *models.User, projectID uint64) (*models.Project, error) {
	return s.access.RequireProjectMember(actor, projectID)
}

// GetProjectTasks returns the tasks of a project the actor participates in.
func (s *ProjectService) GetProjectTasks(actor *models.User, projectID uint64) ([]models.Task, error) {
	if _, err := s.access.RequireProjectMember(actor, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.projectRepo.ListTasks(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}
	return tasks, nil
}

// GetProjectMembers returns the members of a project the actor participates in.
func (s *ProjectService) GetProjectMembers(actor *models.User, projectID uint64) ([]models.ProjectMember, error) {
	if _, err := s.access.RequireProjectMember(actor, projectID); err != nil {
		return nil, err
	}

	members, err := s.projectRepo.ListMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	return members, nil
}
