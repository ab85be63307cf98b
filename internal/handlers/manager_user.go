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

// ManagerUserHandler serves the manager-only account administration
// surface.
type ManagerUserHandler struct {
	userService *services.ManagerUserService
}

func NewManagerUserHandler(userService *services.ManagerUserService) *ManagerUserHandler {
	return &ManagerUserHandler{userService: userService}
}

// ListUsers handles GET /manager/users
func (h *ManagerUserHandler) ListUsers(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.ListUsers(actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Users: dto.ToUserDTOs(users),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetUser handles GET /manager/users/:id
func (h *ManagerUserHandler) GetUser(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(actor, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// CreateUser handles POST /manager/users
func (h *ManagerUserHandler) CreateUser(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.userService.CreateUser(actor, services.CreateUserInput{
		Username:   req.Username,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Patronymic: req.Patronymic,
		PositionID: req.PositionID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// UpdateUser handles PUT /manager/users/:id
func (h *ManagerUserHandler) UpdateUser(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	err := h.userService.UpdateUser(actor, userID, services.UpdateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Patronymic: req.Patronymic,
		RoleID:     req.RoleID,
		PositionID: req.PositionID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User updated"})
}

// DeleteUser handles DELETE /manager/users/:id
func (h *ManagerUserHandler) DeleteUser(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(actor, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}

// GetUserTasks handles GET /manager/users/:id/tasks
func (h *ManagerUserHandler) GetUserTasks(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.userService.GetUserTasks(actor, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AssignmentsToTaskDTOs(assignments))
}

// GetUserProjects handles GET /manager/users/:id/projects
func (h *ManagerUserHandler) GetUserProjects(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	memberships, err := h.userService.GetUserProjects(actor, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MembershipsToProjectDTOs(memberships))
}
