package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/application/ticket/usecases"
	"github.com/eventora/eventora/internal/interfaces/http/handlers/common"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/utils"
)

type CheckInRequest struct {
	EventID  uint   `json:"event_id" binding:"required"`
	QRSecret string `json:"qr_secret" binding:"required,max=128"`
}

// Handler serves ticket holders and door staff.
type Handler struct {
	userTicketsUC usecases.GetUserTicketsExecutor
	checkInUC     usecases.CheckInTicketExecutor
	voidUC        usecases.VoidTicketExecutor
	logger        logger.Interface
}

func NewHandler(
	userTicketsUC usecases.GetUserTicketsExecutor,
	checkInUC usecases.CheckInTicketExecutor,
	voidUC usecases.VoidTicketExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		userTicketsUC: userTicketsUC,
		checkInUC:     checkInUC,
		voidUC:        voidUC,
		logger:        log,
	}
}

// ListMyTickets handles GET /tickets/mine
func (h *Handler) ListMyTickets(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.userTicketsUC.Execute(c.Request.Context(), usecases.GetUserTicketsQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckIn handles POST /tickets/check-in
func (h *Handler) CheckIn(c *gin.Context) {
	staffID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for check-in", "error", err, "staff_id", staffID)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.checkInUC.Execute(c.Request.Context(), usecases.CheckInTicketCommand{
		EventID:   req.EventID,
		QRSecret:  req.QRSecret,
		StaffID:   staffID,
		StaffRole: common.GetUserRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket checked in", result)
}

// VoidTicket handles POST /tickets/:id/void
func (h *Handler) VoidTicket(c *gin.Context) {
	staffID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.voidUC.Execute(c.Request.Context(), usecases.VoidTicketCommand{
		TicketID:  ticketID,
		StaffID:   staffID,
		StaffRole: common.GetUserRole(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket voided", nil)
}
