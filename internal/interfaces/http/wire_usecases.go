package http

import (
	categoryUsecases "github.com/eventora/eventora/internal/application/category/usecases"
	eventUsecases "github.com/eventora/eventora/internal/application/event/usecases"
	"github.com/eventora/eventora/internal/application/order/paymentgateway"
	orderUsecases "github.com/eventora/eventora/internal/application/order/usecases"
	ticketUsecases "github.com/eventora/eventora/internal/application/ticket/usecases"
	userUsecases "github.com/eventora/eventora/internal/application/user/usecases"
	waitlistUsecases "github.com/eventora/eventora/internal/application/waitlist/usecases"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/shared/services/markdown"
)

type allUseCases struct {
	// category
	listCategories *categoryUsecases.ListCategoriesUseCase

	// event
	createEvent         *eventUsecases.CreateEventUseCase
	updateEvent         *eventUsecases.UpdateEventUseCase
	createTicketType    *eventUsecases.CreateTicketTypeUseCase
	listPublishedEvents *eventUsecases.ListPublishedEventsUseCase
	getEventBySlug      *eventUsecases.GetEventBySlugUseCase
	listOrganizerEvents *eventUsecases.ListOrganizerEventsUseCase
	getManagedEvent     *eventUsecases.GetManagedEventUseCase
	listPendingEvents   *eventUsecases.ListPendingEventsUseCase
	reviewEvent         *eventUsecases.ReviewEventUseCase

	// order
	createFreeOrder      *orderUsecases.CreateFreeOrderUseCase
	createPaidOrder      *orderUsecases.CreatePaidOrderUseCase
	completeOrderPayment *orderUsecases.CompleteOrderPaymentUseCase
	hasCompletedOrder    *orderUsecases.HasCompletedOrderUseCase
	orderConfirmation    *orderUsecases.GetOrderConfirmationUseCase
	releaseExpiredOrders *orderUsecases.ReleaseExpiredOrdersUseCase

	// ticket
	userTickets    *ticketUsecases.GetUserTicketsUseCase
	eventAttendees *ticketUsecases.GetEventAttendeesUseCase
	checkInTicket  *ticketUsecases.CheckInTicketUseCase
	voidTicket     *ticketUsecases.VoidTicketUseCase

	// user
	syncIdentity   *userUsecases.SyncIdentityUseCase
	deleteIdentity *userUsecases.DeleteIdentityUseCase
	manageUser     *userUsecases.ManageUserUseCase
	getCurrentUser *userUsecases.GetCurrentUserUseCase

	// waitlist
	joinWaitlist *waitlistUsecases.JoinWaitlistUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	renderer := markdown.NewRenderer()
	codes := ticket.NewDefaultCodeGenerator()
	recorder := c.ledgerRecorder()
	sender := c.confirmationSender()

	c.ucs = &allUseCases{
		listCategories: categoryUsecases.NewListCategoriesUseCase(r.categoryRepo, c.log),

		createEvent: eventUsecases.NewCreateEventUseCase(
			r.eventRepo, r.ticketTypeRepo, r.categoryRepo, renderer, c.txMgr, c.log,
		),
		updateEvent: eventUsecases.NewUpdateEventUseCase(
			r.eventRepo, r.categoryRepo, renderer, c.txMgr, c.log,
		),
		createTicketType: eventUsecases.NewCreateTicketTypeUseCase(r.eventRepo, r.ticketTypeRepo, c.log),
		listPublishedEvents: eventUsecases.NewListPublishedEventsUseCase(
			r.eventRepo, r.ticketTypeRepo, r.categoryRepo, r.userRepo, c.log,
		),
		getEventBySlug: eventUsecases.NewGetEventBySlugUseCase(
			r.eventRepo, r.ticketTypeRepo, r.categoryRepo, r.userRepo, renderer, c.log,
		),
		listOrganizerEvents: eventUsecases.NewListOrganizerEventsUseCase(
			r.eventRepo, r.ticketTypeRepo, r.ticketRepo, r.categoryRepo, c.log,
		),
		getManagedEvent: eventUsecases.NewGetManagedEventUseCase(
			r.eventRepo, r.ticketTypeRepo, r.ticketRepo, r.categoryRepo, r.userRepo, c.log,
		),
		listPendingEvents: eventUsecases.NewListPendingEventsUseCase(
			r.eventRepo, r.ticketTypeRepo, r.categoryRepo, r.userRepo, c.log,
		),
		reviewEvent: eventUsecases.NewReviewEventUseCase(r.eventRepo, c.txMgr, c.log),

		createFreeOrder: orderUsecases.NewCreateFreeOrderUseCase(
			r.userRepo, r.eventRepo, r.ticketTypeRepo, r.orderRepo, r.ticketRepo,
			codes, c.txMgr, recorder, sender, c.log,
		),
		createPaidOrder: orderUsecases.NewCreatePaidOrderUseCase(
			r.userRepo, r.eventRepo, r.ticketTypeRepo, r.orderRepo,
			c.txMgr, recorder, c.log, c.cfg.Ledger.PaymentHold(),
		),
		completeOrderPayment: orderUsecases.NewCompleteOrderPaymentUseCase(
			r.userRepo, r.eventRepo, r.orderRepo, r.ticketRepo,
			codes, paymentgateway.NewSimulatedGateway(), c.txMgr, recorder, sender, c.log,
		),
		hasCompletedOrder: orderUsecases.NewHasCompletedOrderUseCase(r.orderRepo, c.log),
		orderConfirmation: orderUsecases.NewGetOrderConfirmationUseCase(
			r.eventRepo, r.ticketTypeRepo, r.orderRepo, r.ticketRepo, c.log,
		),
		releaseExpiredOrders: orderUsecases.NewReleaseExpiredOrdersUseCase(
			r.orderRepo, r.ticketTypeRepo, c.txMgr, recorder, c.log, c.cfg.Ledger.SweepBatchSize,
		),

		userTickets: ticketUsecases.NewGetUserTicketsUseCase(r.eventRepo, r.ticketTypeRepo, r.ticketRepo, c.log),
		eventAttendees: ticketUsecases.NewGetEventAttendeesUseCase(
			r.eventRepo, r.ticketTypeRepo, r.ticketRepo, r.userRepo, c.log,
		),
		checkInTicket: ticketUsecases.NewCheckInTicketUseCase(
			r.eventRepo, r.ticketTypeRepo, r.ticketRepo, c.txMgr, c.log,
		),
		voidTicket: ticketUsecases.NewVoidTicketUseCase(r.eventRepo, r.ticketRepo, c.txMgr, c.log),

		syncIdentity:   userUsecases.NewSyncIdentityUseCase(r.userRepo, c.txMgr, c.log),
		deleteIdentity: userUsecases.NewDeleteIdentityUseCase(r.userRepo, c.log),
		manageUser:     userUsecases.NewManageUserUseCase(r.userRepo, c.txMgr, c.log),
		getCurrentUser: userUsecases.NewGetCurrentUserUseCase(r.userRepo, c.log),

		joinWaitlist: waitlistUsecases.NewJoinWaitlistUseCase(r.eventRepo, r.waitlistRepo, c.txMgr, c.log),
	}
}
