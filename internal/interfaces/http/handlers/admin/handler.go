package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	eventUsecases "github.com/eventora/eventora/internal/application/event/usecases"
	userUsecases "github.com/eventora/eventora/internal/application/user/usecases"
	"github.com/eventora/eventora/internal/interfaces/http/handlers/common"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/utils"
)

type ReviewEventRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
	Notes    string `json:"notes" binding:"max=2000"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin organizer attendee"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

// Handler serves the admin review queue and user management.
type Handler struct {
	listPendingUC eventUsecases.ListPendingEventsExecutor
	reviewEventUC eventUsecases.ReviewEventExecutor
	manageUserUC  userUsecases.ManageUserExecutor
	logger        logger.Interface
}

func NewHandler(
	listPendingUC eventUsecases.ListPendingEventsExecutor,
	reviewEventUC eventUsecases.ReviewEventExecutor,
	manageUserUC userUsecases.ManageUserExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		listPendingUC: listPendingUC,
		reviewEventUC: reviewEventUC,
		manageUserUC:  manageUserUC,
		logger:        log,
	}
}

// ListPendingEvents handles GET /admin/events/pending
func (h *Handler) ListPendingEvents(c *gin.Context) {
	result, err := h.listPendingUC.Execute(c.Request.Context(), eventUsecases.ListPendingEventsQuery{
		UserRole: common.GetUserRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReviewEvent handles POST /admin/events/:id/review
func (h *Handler) ReviewEvent(c *gin.Context) {
	reviewerID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	eventID, err := utils.ParseUintParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for event review", "error", err, "event_id", eventID)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.reviewEventUC.Execute(c.Request.Context(), eventUsecases.ReviewEventCommand{
		EventID:      eventID,
		ReviewerID:   reviewerID,
		ReviewerRole: common.GetUserRole(c),
		Decision:     req.Decision,
		Notes:        req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("event reviewed", "event_id", eventID, "reviewer_id", reviewerID, "decision", req.Decision)
	utils.SuccessResponse(c, http.StatusOK, "Event reviewed", result)
}

// ChangeUserRole handles PATCH /admin/users/:id/role
func (h *Handler) ChangeUserRole(c *gin.Context) {
	actorID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.manageUserUC.ChangeRole(c.Request.Context(), userUsecases.ChangeUserRoleCommand{
		ActorID: actorID,
		UserID:  userID,
		Role:    req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User role updated", result)
}

// ChangeUserStatus handles PATCH /admin/users/:id/status
func (h *Handler) ChangeUserStatus(c *gin.Context) {
	actorID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.manageUserUC.ChangeStatus(c.Request.Context(), userUsecases.ChangeUserStatusCommand{
		ActorID: actorID,
		UserID:  userID,
		Status:  req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User status updated", result)
}
