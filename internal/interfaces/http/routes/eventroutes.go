package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/infrastructure/permission"
	eventhandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/event"
	"github.com/eventora/eventora/internal/interfaces/http/middleware"
	"github.com/eventora/eventora/internal/shared/authorization"
)

type EventRouteConfig struct {
	EventHandler         *eventhandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupEventRoutes(engine *gin.Engine, config *EventRouteConfig) {
	h := config.EventHandler
	requireAuth := config.AuthMiddleware.RequireAuth()
	perm := config.PermissionMiddleware.RequirePermission

	events := engine.Group("/events")
	{
		// Public catalogue
		events.GET("", h.ListEvents)
		events.GET("/slug/:slug", h.GetEventBySlug)
		events.GET("/:id/registration", config.AuthMiddleware.OptionalAuth(), h.GetRegistration)

		// Organizer management
		events.GET("/mine", requireAuth, authorization.RequireOrganizer(), h.ListMyEvents)
		events.GET("/:id", requireAuth, perm(permission.ResourceEvent, permission.ActionManage), h.GetManagedEvent)
		events.POST("", requireAuth, perm(permission.ResourceEvent, permission.ActionCreate), h.CreateEvent)
		events.PATCH("/:id", requireAuth, perm(permission.ResourceEvent, permission.ActionManage), h.UpdateEvent)
		events.POST("/:id/ticket-types", requireAuth, perm(permission.ResourceEvent, permission.ActionManage), h.CreateTicketType)

		// Attendee-only and owner-only reads are decided by the use cases
		events.GET("/:id/attendees", requireAuth, h.GetAttendees)
		events.GET("/:id/confirmation", requireAuth, h.GetConfirmation)
		events.POST("/:id/waitlist", requireAuth, perm(permission.ResourceWaitlist, permission.ActionJoin), h.JoinWaitlist)
	}
}
