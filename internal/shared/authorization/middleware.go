package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/shared/constants"
	"github.com/eventora/eventora/internal/shared/utils"
)

func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(RoleAdmin)
}

// RequireOrganizer admits organizers and admins.
func RequireOrganizer() gin.HandlerFunc {
	return RequireRoles(RoleOrganizer, RoleAdmin)
}

func RequireRoles(roles ...UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := UserRole(c.GetString(constants.ContextKeyUserRole))
		for _, role := range roles {
			if current == role {
				c.Next()
				return
			}
		}
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient role for this operation")
		c.Abort()
	}
}

// CanManageEvent reports whether the caller owns the event or is an admin.
func CanManageEvent(userID uint, userRole UserRole, organizerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID != 0 && userID == organizerID
}
