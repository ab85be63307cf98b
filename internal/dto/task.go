package dto

import (
	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/utils"
)

// TaskDTO represents a task in API responses. The project summary is
// nullable: a task outside any project serializes `"project": null`,
// never an omitted field, so clients can tell "unassigned" apart from
// "not loaded".
type TaskDTO struct {
	ID          uint64      `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	StartDate   *string     `json:"start_date"`
	DueDate     *string     `json:"due_date"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	Project     *ProjectDTO `json:"project"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToTaskDTO converts a Task model to TaskDTO. Status, Priority and (when
// bound) Project.Status must be loaded on the model.
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		StartDate:   formatDate(task.StartDate),
		DueDate:     formatDate(task.DueDate),
		Status:      task.Status.Name,
		Priority:    task.Priority.Name,
	}
	if task.Project != nil {
		project := ToProjectDTO(*task.Project)
		dto.Project = &project
	}
	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}

// AssignmentsToTaskDTOs converts assignment links to the views of the
// linked tasks
func AssignmentsToTaskDTOs(assignments []models.TaskAssignment) []TaskDTO {
	items := make([]TaskDTO, len(assignments))
	for i, assignment := range assignments {
		items[i] = ToTaskDTO(assignment.Task)
	}
	return items
}
