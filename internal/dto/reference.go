package dto

import "github.com/teamtrack/project-management-api/internal/models"

// ReferenceDTO represents one row of a seeded lookup table
type ReferenceDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func ToRoleDTOs(roles []models.Role) []ReferenceDTO {
	items := make([]ReferenceDTO, len(roles))
	for i, role := range roles {
		items[i] = ReferenceDTO{ID: role.ID, Name: string(role.Name)}
	}
	return items
}

func ToPositionDTOs(positions []models.Position) []ReferenceDTO {
	items := make([]ReferenceDTO, len(positions))
	for i, position := range positions {
		items[i] = ReferenceDTO{ID: position.ID, Name: position.Name}
	}
	return items
}

func ToTaskStatusDTOs(statuses []models.TaskStatus) []ReferenceDTO {
	items := make([]ReferenceDTO, len(statuses))
	for i, status := range statuses {
		items[i] = ReferenceDTO{ID: status.ID, Name: status.Name}
	}
	return items
}

func ToTaskPriorityDTOs(priorities []models.TaskPriority) []ReferenceDTO {
	items := make([]ReferenceDTO, len(priorities))
	for i, priority := range priorities {
		items[i] = ReferenceDTO{ID: priority.ID, Name: priority.Name}
	}
	return items
}

func ToProjectStatusDTOs(statuses []models.ProjectStatus) []ReferenceDTO {
	items := make([]ReferenceDTO, len(statuses))
	for i, status := range statuses {
		items[i] = ReferenceDTO{ID: status.ID, Name: status.Name}
	}
	return items
}
