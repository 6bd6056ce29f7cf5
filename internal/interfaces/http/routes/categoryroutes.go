package routes

import (
	"github.com/gin-gonic/gin"

	categoryhandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/category"
)

type CategoryRouteConfig struct {
	CategoryHandler *categoryhandlers.Handler
}

func SetupCategoryRoutes(engine *gin.Engine, config *CategoryRouteConfig) {
	engine.GET("/categories", config.CategoryHandler.ListCategories)
}
