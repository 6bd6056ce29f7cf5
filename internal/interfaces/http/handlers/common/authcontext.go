// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/constants"
	"github.com/eventora/eventora/internal/shared/errors"
	"github.com/eventora/eventora/internal/shared/logger"
)

// GetUserID retrieves the authenticated user's ID set by the auth middleware.
func GetUserID(c *gin.Context, log logger.Interface) (uint, error) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		log.Warnw("user_id not found in context", "ip", c.ClientIP())
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}

	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		log.Warnw("invalid user_id type in context", "user_id", raw, "ip", c.ClientIP())
		return 0, errors.NewInternalError("invalid user ID type")
	}

	return userID, nil
}

// GetOptionalUserID returns 0 for anonymous requests.
func GetOptionalUserID(c *gin.Context) uint {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0
	}
	userID, _ := raw.(uint)
	return userID
}

// GetUserRole falls back to attendee when no role is present.
func GetUserRole(c *gin.Context) authorization.UserRole {
	return authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
}
