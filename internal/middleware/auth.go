package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack/project-management-api/internal/constants"
	apierrors "github.com/teamtrack/project-management-api/internal/errors"
	"github.com/teamtrack/project-management-api/internal/models"
	"github.com/teamtrack/project-management-api/internal/services"
)

// RequireAuth resolves the bearer token into the acting user and aborts
// with 401 when the token is missing, revoked or stale.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apierrors.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}
		token := parts[1]

		user, err := authService.CurrentUser(token)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Set(constants.ContextKeyToken, token)
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from the request context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// GetCurrentToken retrieves the raw bearer token from the request context
func GetCurrentToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyToken)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
