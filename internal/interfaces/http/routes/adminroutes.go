package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/infrastructure/permission"
	adminhandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/admin"
	"github.com/eventora/eventora/internal/interfaces/http/middleware"
	"github.com/eventora/eventora/internal/shared/authorization"
)

type AdminRouteConfig struct {
	AdminHandler         *adminhandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	perm := config.PermissionMiddleware.RequirePermission

	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		adminEvents := admin.Group("/events")
		adminEvents.Use(perm(permission.ResourceEvent, permission.ActionReview))
		{
			adminEvents.GET("/pending", config.AdminHandler.ListPendingEvents)
			adminEvents.POST("/:id/review", config.AdminHandler.ReviewEvent)
		}

		adminUsers := admin.Group("/users")
		adminUsers.Use(perm(permission.ResourceUser, permission.ActionManage))
		{
			adminUsers.PATCH("/:id/role", config.AdminHandler.ChangeUserRole)
			adminUsers.PATCH("/:id/status", config.AdminHandler.ChangeUserStatus)
		}
	}
}
