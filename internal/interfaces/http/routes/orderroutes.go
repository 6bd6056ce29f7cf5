package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/infrastructure/permission"
	orderhandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/order"
	"github.com/eventora/eventora/internal/interfaces/http/middleware"
)

type OrderRouteConfig struct {
	OrderHandler         *orderhandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	CheckoutLimiter      *middleware.RateLimiter
}

func SetupOrderRoutes(engine *gin.Engine, config *OrderRouteConfig) {
	orders := engine.Group("/orders")
	orders.Use(
		config.AuthMiddleware.RequireAuth(),
		config.PermissionMiddleware.RequirePermission(permission.ResourceOrder, permission.ActionCreate),
		config.CheckoutLimiter.Limit(),
	)
	{
		orders.POST("/free", config.OrderHandler.CreateFreeOrder)
		orders.POST("/paid", config.OrderHandler.CreatePaidOrder)
		orders.POST("/:id/payment", config.OrderHandler.CompletePayment)
	}
}
