package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack/project-management-api/internal/dto"
	"github.com/teamtrack/project-management-api/internal/services"
)

// ReferenceHandler serves the seeded lookup tables.
type ReferenceHandler struct {
	referenceService *services.ReferenceService
}

func NewReferenceHandler(referenceService *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// ListRoles handles GET /references/roles
func (h *ReferenceHandler) ListRoles(c *gin.Context) {
	roles, err := h.referenceService.ListRoles()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleDTOs(roles))
}

// ListPositions handles GET /references/positions
func (h *ReferenceHandler) ListPositions(c *gin.Context) {
	positions, err := h.referenceService.ListPositions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPositionDTOs(positions))
}

// ListTaskStatuses handles GET /references/task-statuses
func (h *ReferenceHandler) ListTaskStatuses(c *gin.Context) {
	statuses, err := h.referenceService.ListTaskStatuses()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskStatusDTOs(statuses))
}

// ListTaskPriorities handles GET /references/task-priorities
func (h *ReferenceHandler) ListTaskPriorities(c *gin.Context) {
	priorities, err := h.referenceService.ListTaskPriorities()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskPriorityDTOs(priorities))
}

// ListProjectStatuses handles GET /references/project-statuses
func (h *ReferenceHandler) ListProjectStatuses(c *gin.Context) {
	statuses, err := h.referenceService.ListProjectStatuses()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectStatusDTOs(statuses))
}
