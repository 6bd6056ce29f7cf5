package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/infrastructure/permission"
	tickethandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/ticket"
	"github.com/eventora/eventora/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	perm := config.PermissionMiddleware.RequirePermission

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths before parameterized ones
		tickets.GET("/mine", config.TicketHandler.ListMyTickets)
		tickets.POST("/check-in",
			perm(permission.ResourceTicket, permission.ActionCheckIn),
			config.TicketHandler.CheckIn)

		tickets.POST("/:id/void",
			perm(permission.ResourceTicket, permission.ActionVoid),
			config.TicketHandler.VoidTicket)
	}
}
