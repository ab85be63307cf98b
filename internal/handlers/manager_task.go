package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack/project-management-api/internal/dto"
	apierrors "github.com/teamtrack/project-management-api/internal/errors"
	"github.com/teamtrack/project-management-api/internal/middleware"
	"github.com/teamtrack/project-management-api/internal/services"
	"github.com/teamtrack/project-management-api/internal/utils"
)

// ManagerTaskHandler serves the manager-only task administration
// surface, including assignment links.
type ManagerTaskHandler struct {
	taskService *services.ManagerTaskService
}

func NewManagerTaskHandler(taskService *services.ManagerTaskService) *ManagerTaskHandler {
	return &ManagerTaskHandler{taskService: taskService}
}

// ListTasks handles GET /manager/tasks
func (h *ManagerTaskHandler) ListTasks(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.ListTasks(actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Tasks: dto.ToTaskDTOs(tasks),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetTask handles GET /manager/tasks/:id
func (h *ManagerTaskHandler) GetTask(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(actor, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask handles POST /manager/tasks. New tasks start unbound with
// default status and priority; project, status and priority change via
// update.
func (h *ManagerTaskHandler) CreateTask(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.CreateTask(actor, services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		DueDate:     dueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask handles PUT /manager/tasks/:id
func (h *ManagerTaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	err = h.taskService.UpdateTask(actor, taskID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		DueDate:     dueDate,
		StatusID:    req.StatusID,
		PriorityID:  req.PriorityID,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task updated"})
}

// DeleteTask handles DELETE /manager/tasks/:id. Assignment links go
// with the task.
func (h *ManagerTaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(actor, taskID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted"})
}

// GetTaskAssignees handles GET /manager/tasks/:id/assignees
func (h *ManagerTaskHandler) GetTaskAssignees(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignees, err := h.taskService.GetTaskAssignees(actor, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AssigneesToUserDTOs(assignees))
}

// AddTaskAssignee handles POST /manager/tasks/:id/assignees/:user_id
func (h *ManagerTaskHandler) AddTaskAssignee(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.taskService.AddTaskAssignee(actor, taskID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Assignee added to task"})
}

// RemoveTaskAssignee handles DELETE /manager/tasks/:id/assignees/:user_id
func (h *ManagerTaskHandler) RemoveTaskAssignee(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.taskService.RemoveTaskAssignee(actor, taskID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Assignee removed from task"})
}
