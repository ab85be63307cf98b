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

// ManagerProjectHandler serves the manager-only project administration
// surface, including membership links.
type ManagerProjectHandler struct {
	projectService *services.ManagerProjectService
}

func NewManagerProjectHandler(projectService *services.ManagerProjectService) *ManagerProjectHandler {
	return &ManagerProjectHandler{projectService: projectService}
}

// ListProjects handles GET /manager/projects
func (h *ManagerProjectHandler) ListProjects(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListProjects(actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectListResponse{
		Projects: dto.ToProjectDTOs(projects),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetProject handles GET /manager/projects/:id
func (h *ManagerProjectHandler) GetProject(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(actor, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// CreateProject handles POST /manager/projects
func (h *ManagerProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.CreateProjectRequest
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

	project, err := h.projectService.CreateProject(actor, services.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		DueDate:     dueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject handles PUT /manager/projects/:id
func (h *ManagerProjectHandler) UpdateProject(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
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

	err = h.projectService.UpdateProject(actor, projectID, services.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		DueDate:     dueDate,
		StatusID:    req.StatusID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Project updated"})
}

// DeleteProject handles DELETE /manager/projects/:id. Tasks of the
// project and all membership links go with it.
func (h *ManagerProjectHandler) DeleteProject(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(actor, projectID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted"})
}

// GetProjectMembers handles GET /manager/projects/:id/members
func (h *ManagerProjectHandler) GetProjectMembers(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.projectService.GetProjectMembers(actor, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MembersToUserDTOs(members))
}

// AddProjectMember handles POST /manager/projects/:id/members/:user_id
func (h *ManagerProjectHandler) AddProjectMember(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.projectService.AddProjectMember(actor, projectID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Member added to project"})
}

// RemoveProjectMember handles DELETE /manager/projects/:id/members/:user_id
func (h *ManagerProjectHandler) RemoveProjectMember(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.projectService.RemoveProjectMember(actor, projectID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Member removed from project"})
}

// GetProjectTasks handles GET /manager/projects/:id/tasks
func (h *ManagerProjectHandler) GetProjectTasks(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.projectService.GetProjectTasks(actor, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}
