package event

import (
	"net/http"

	"github.com/gin-gonic/gin"

	eventUsecases "github.com/eventora/eventora/internal/application/event/usecases"
	orderUsecases "github.com/eventora/eventora/internal/application/order/usecases"
	ticketUsecases "github.com/eventora/eventora/internal/application/ticket/usecases"
	waitlistUsecases "github.com/eventora/eventora/internal/application/waitlist/usecases"
	"github.com/eventora/eventora/internal/interfaces/http/handlers/common"
	"github.com/eventora/eventora/internal/shared/errors"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/utils"
)

// Handler serves the event catalogue, organizer event management and the
// per-event reads of the ledger.
type Handler struct {
	listPublishedUC  eventUsecases.ListPublishedEventsExecutor
	getBySlugUC      eventUsecases.GetEventBySlugExecutor
	createEventUC    eventUsecases.CreateEventExecutor
	updateEventUC    eventUsecases.UpdateEventExecutor
	createTicketType eventUsecases.CreateTicketTypeExecutor
	listOrganizerUC  eventUsecases.ListOrganizerEventsExecutor
	getManagedUC     eventUsecases.GetManagedEventExecutor
	hasCompletedUC   orderUsecases.HasCompletedOrderExecutor
	confirmationUC   orderUsecases.GetOrderConfirmationExecutor
	attendeesUC      ticketUsecases.GetEventAttendeesExecutor
	joinWaitlistUC   waitlistUsecases.JoinWaitlistExecutor
	logger           logger.Interface
}

func NewHandler(
	listPublishedUC eventUsecases.ListPublishedEventsExecutor,
	getBySlugUC eventUsecases.GetEventBySlugExecutor,
	createEventUC eventUsecases.CreateEventExecutor,
	updateEventUC eventUsecases.UpdateEventExecutor,
	createTicketType eventUsecases.CreateTicketTypeExecutor,
	listOrganizerUC eventUsecases.ListOrganizerEventsExecutor,
	getManagedUC eventUsecases.GetManagedEventExecutor,
	hasCompletedUC orderUsecases.HasCompletedOrderExecutor,
	confirmationUC orderUsecases.GetOrderConfirmationExecutor,
	attendeesUC ticketUsecases.GetEventAttendeesExecutor,
	joinWaitlistUC waitlistUsecases.JoinWaitlistExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		listPublishedUC:  listPublishedUC,
		getBySlugUC:      getBySlugUC,
		createEventUC:    createEventUC,
		updateEventUC:    updateEventUC,
		createTicketType: createTicketType,
		listOrganizerUC:  listOrganizerUC,
		getManagedUC:     getManagedUC,
		hasCompletedUC:   hasCompletedUC,
		confirmationUC:   confirmationUC,
		attendeesUC:      attendeesUC,
		joinWaitlistUC:   joinWaitlistUC,
		logger:           log,
	}
}

// ListEvents handles GET /events
func (h *Handler) ListEvents(c *gin.Context) {
	query, err := parseListPublishedEventsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPublishedUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetEventBySlug handles GET /events/slug/:slug
func (h *Handler) GetEventBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("event slug is required"))
		return
	}

	result, err := h.getBySlugUC.Execute(c.Request.Context(), slug)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateEvent handles POST /events
func (h *Handler) CreateEvent(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create event", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createEventUC.Execute(c.Request.Context(), eventUsecases.CreateEventCommand{
		OrganizerID:   userID,
		OrganizerRole: common.GetUserRole(c),
		Event:         req.toInput(),
		TicketTypes:   req.toTicketTypeInputs(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Event submitted for review")
}

// UpdateEvent handles PATCH /events/:id
func (h *Handler) UpdateEvent(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update event", "error", err, "event_id", eventID)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateEventUC.Execute(c.Request.Context(), eventUsecases.UpdateEventCommand{
		EventID:  eventID,
		UserID:   userID,
		UserRole: common.GetUserRole(c),
		Event:    req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event updated successfully", result)
}

// CreateTicketType handles POST /events/:id/ticket-types
func (h *Handler) CreateTicketType(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket type", "error", err, "event_id", eventID)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createTicketType.Execute(c.Request.Context(), eventUsecases.CreateTicketTypeCommand{
		EventID:    eventID,
		UserID:     userID,
		UserRole:   common.GetUserRole(c),
		TicketType: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket type created successfully")
}

// ListMyEvents handles GET /events/mine
func (h *Handler) ListMyEvents(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listOrganizerUC.Execute(c.Request.Context(), eventUsecases.ListOrganizerEventsQuery{
		OrganizerID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetManagedEvent handles GET /events/:id
func (h *Handler) GetManagedEvent(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getManagedUC.Execute(c.Request.Context(), eventUsecases.GetManagedEventQuery{
		EventID:  eventID,
		UserID:   userID,
		UserRole: common.GetUserRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRegistration handles GET /events/:id/registration
func (h *Handler) GetRegistration(c *gin.Context) {
	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	registered, err := h.hasCompletedUC.Execute(c.Request.Context(), orderUsecases.HasCompletedOrderQuery{
		EventID: eventID,
		UserID:  common.GetOptionalUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", RegistrationResponse{Registered: registered})
}

// GetAttendees handles GET /events/:id/attendees
func (h *Handler) GetAttendees(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.attendeesUC.Execute(c.Request.Context(), ticketUsecases.GetEventAttendeesQuery{
		EventID:  eventID,
		UserID:   userID,
		UserRole: common.GetUserRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetConfirmation handles GET /events/:id/confirmation
func (h *Handler) GetConfirmation(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.confirmationUC.Execute(c.Request.Context(), orderUsecases.GetOrderConfirmationQuery{
		UserID:  userID,
		EventID: eventID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// JoinWaitlist handles POST /events/:id/waitlist
func (h *Handler) JoinWaitlist(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.joinWaitlistUC.Execute(c.Request.Context(), waitlistUsecases.JoinWaitlistCommand{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Joined {
		utils.CreatedResponse(c, result, "Joined the waitlist")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Already on the waitlist", result)
}
