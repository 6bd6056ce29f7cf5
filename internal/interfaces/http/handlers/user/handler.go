package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/application/user/usecases"
	"github.com/eventora/eventora/internal/interfaces/http/handlers/common"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/utils"
)

type Handler struct {
	getCurrentUserUC usecases.GetCurrentUserExecutor
	logger           logger.Interface
}

func NewHandler(getCurrentUserUC usecases.GetCurrentUserExecutor, log logger.Interface) *Handler {
	return &Handler{
		getCurrentUserUC: getCurrentUserUC,
		logger:           log,
	}
}

// GetMe handles GET /users/me
func (h *Handler) GetMe(c *gin.Context) {
	userID, err := common.GetUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCurrentUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "eventora",
	})
}
