package services

import (
	"fmt"

	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/repository"
)

// ReferenceService exposes the seeded lookup tables.
type ReferenceService struct {
	refRepo repository.ReferenceRepository
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(refRepo repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{refRepo: refRepo}
}

func (s *ReferenceService) ListRoles() ([]models.Role, error) {
	roles, err := s.refRepo.ListRoles()
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

func (s *ReferenceService) ListPositions() ([]models.Position, error) {
	positions, err := s.refRepo.ListPositions()
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return positions, nil
}

func (s *ReferenceService) ListTaskStatuses() ([]models.TaskStatus, error) {
	statuses, err := s.refRepo.ListTaskStatuses()
	if err != nil {
		return nil, fmt.Errorf("failed to list task statuses: %w", err)
	}
	return statuses, nil
}

func (s *ReferenceService) ListTaskPriorities() ([]models.TaskPriority, error) {
	priorities, err := s.refRepo.ListTaskPriorities()
	if err != nil {
		return nil, fmt.Errorf("failed to list task priorities: %w", err)
	}
	return priorities, nil
}

func (s *ReferenceService) ListProjectStatuses() ([]models.ProjectStatus, error) {
	statuses, err := s.refRepo.ListProjectStatuses()
	if err != nil {
		return nil, fmt.Errorf("failed to list project statuses: %w", err)
	}
	return statuses, nil
}
