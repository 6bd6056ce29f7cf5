package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/application/category/usecases"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/utils"
)

type Handler struct {
	listCategoriesUC usecases.ListCategoriesExecutor
	logger           logger.Interface
}

func NewHandler(listCategoriesUC usecases.ListCategoriesExecutor, log logger.Interface) *Handler {
	return &Handler{
		listCategoriesUC: listCategoriesUC,
		logger:           log,
	}
}

// ListCategories handles GET /categories
func (h *Handler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
