package order

import (
	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/application/order/usecases"
	"github.com/eventora/eventora/internal/interfaces/http/handlers/common"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/utils"
)

// Handler exposes the checkout paths of the ledger.
type Handler struct {
	createFreeUC      usecases.CreateFreeOrderExecutor
	createPaidUC      usecases.CreatePaidOrderExecutor
	completePaymentUC usecases.CompleteOrderPaymentExecutor
	logger            logger.Interface
}

func NewHandler(
	createFreeUC usecases.CreateFreeOrderExecutor,
	createPaidUC usecases.CreatePaidOrderExecutor,
	completePaymentUC usecases.CompleteOrderPaymentExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		createFreeUC:      createFreeUC,
		createPaidUC:      createPaidUC,
		completePaymentUC: completePaymentUC,
		logger:            log,
	}
}

// CreateFreeOrder handles POST /orders/free
// @Summary Register for a free ticket type
// @Tags Orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateFreeOrderRequest true "Ticket selection"
// @Success 201 {object} utils.APIResponse{data=dto.FreeOrderResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /orders/free [post]
func (h *Handler) CreateFreeOrder(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateFreeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for free order", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createFreeUC.Execute(c.Request.Context(), usecases.CreateFreeOrderCommand{
		UserID:       userID,
		EventID:      req.EventID,
		TicketTypeID: req.TicketTypeID,
		Quantity:     req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Registration completed")
}

// CreatePaidOrder handles POST /orders/paid
// @Summary Reserve paid tickets and open a payment intent
// @Tags Orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreatePaidOrderRequest true "Ticket selections"
// @Success 201 {object} utils.APIResponse{data=dto.PaidOrderResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /orders/paid [post]
func (h *Handler) CreatePaidOrder(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreatePaidOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for paid order", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createPaidUC.Execute(c.Request.Context(), usecases.CreatePaidOrderCommand{
		UserID:  userID,
		EventID: req.EventID,
		Items:   toItemInputs(req.Items),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Tickets reserved pending payment")
}

// CompletePayment handles POST /orders/:id/payment
func (h *Handler) CompletePayment(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	orderID, err := utils.ParseUintParam(c, "id", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for order payment", "error", err, "order_id", orderID)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.completePaymentUC.Execute(c.Request.Context(), usecases.CompleteOrderPaymentCommand{
		UserID:           userID,
		OrderID:          orderID,
		PaymentReference: req.PaymentReference,
		Items:            toItemInputs(req.Items),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Payment confirmed")
}
