package dto

import (
	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/utils"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	DueDate     *string `json:"due_date"`
	Status      string  `json:"status"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects   []ProjectDTO             `json:"projects"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToProjectDTO converts a Project model to ProjectDTO. Status must be
// loaded on the model.
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		StartDate:   formatDate(project.StartDate),
		DueDate:     formatDate(project.DueDate),
		Status:      project.Status.Name,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}
	return items
}

// MembershipsToProjectDTOs converts membership links to the views of the
// linked projects
func MembershipsToProjectDTOs(memberships []models.ProjectMember) []ProjectDTO {
	items := make([]ProjectDTO, len(memberships))
	for i, membership := range memberships {
		items[i] = ToProjectDTO(membership.Project)
	}
	return items
}
