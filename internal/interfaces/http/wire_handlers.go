package http

import (
	adminHandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/admin"
	categoryHandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/category"
	eventHandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/event"
	orderHandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/order"
	ticketHandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/ticket"
	userHandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/user"
	"github.com/eventora/eventora/internal/interfaces/http/handlers/webhook"
)

type allHandlers struct {
	categoryHandler *categoryHandlers.Handler
	eventHandler    *eventHandlers.Handler
	orderHandler    *orderHandlers.Handler
	ticketHandler   *ticketHandlers.Handler
	adminHandler    *adminHandlers.Handler
	userHandler     *userHandlers.Handler
	identityHandler *webhook.IdentityHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	c.hdlrs = &allHandlers{
		categoryHandler: categoryHandlers.NewHandler(u.listCategories, c.log),
		eventHandler: eventHandlers.NewHandler(
			u.listPublishedEvents,
			u.getEventBySlug,
			u.createEvent,
			u.updateEvent,
			u.createTicketType,
			u.listOrganizerEvents,
			u.getManagedEvent,
			u.hasCompletedOrder,
			u.orderConfirmation,
			u.eventAttendees,
			u.joinWaitlist,
			c.log,
		),
		orderHandler: orderHandlers.NewHandler(
			u.createFreeOrder,
			u.createPaidOrder,
			u.completeOrderPayment,
			c.log,
		),
		ticketHandler: ticketHandlers.NewHandler(u.userTickets, u.checkInTicket, u.voidTicket, c.log),
		adminHandler:  adminHandlers.NewHandler(u.listPendingEvents, u.reviewEvent, u.manageUser, c.log),
		userHandler:   userHandlers.NewHandler(u.getCurrentUser, c.log),
		identityHandler: webhook.NewIdentityHandler(
			c.webhookVerifier,
			c.deliveryGuard,
			u.syncIdentity,
			u.deleteIdentity,
			c.log,
		),
	}
}
