package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack/project-management-api/internal/auth"
	apierrors "github.com/teamtrack/project-management-api/internal/errors"
	"github.com/teamtrack/project-management-api/internal/logging"
	"github.com/teamtrack/project-management-api/internal/services"
)

// respondError maps service errors to HTTP responses. Every handler
// funnels failures through here so the status mapping lives in one place.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		apierrors.Unauthorized(c, err.Error())

	case errors.Is(err, services.ErrInsufficientRole),
		errors.Is(err, services.ErrSelfModification),
		errors.Is(err, services.ErrNotProjectMember),
		errors.Is(err, services.ErrNotTaskParticipant):
		apierrors.Forbidden(c, err.Error())

	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrRoleNotFound),
		errors.Is(err, services.ErrPositionNotFound),
		errors.Is(err, services.ErrTaskStatusNotFound),
		errors.Is(err, services.ErrTaskPriorityNotFound),
		errors.Is(err, services.ErrProjectStatusNotFound),
		errors.Is(err, services.ErrMemberNotInProject),
		errors.Is(err, services.ErrAssignmentNotFound):
		apierrors.NotFound(c, err.Error())

	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrMemberAlreadyAdded),
		errors.Is(err, services.ErrAlreadyAssigned):
		apierrors.Conflict(c, err.Error())

	case errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrRegistrationClosed):
		apierrors.BadRequest(c, err.Error())

	default:
		logging.Logger.WithError(err).Error("unhandled service error")
		apierrors.InternalError(c, "")
	}
}

// parseIDParam reads a numeric path parameter, responding 400 on garbage.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
