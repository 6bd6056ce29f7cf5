package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/eventora/eventora/internal/interfaces/http/middleware"
	"github.com/eventora/eventora/internal/interfaces/http/routes"

	_ "github.com/eventora/eventora/docs"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", c.hdlrs.userHandler.HealthCheck)
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if c.cfg.Metrics.Enabled {
		path := c.cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		c.engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	auth := c.authMiddleware
	perms := c.permissionMiddleware

	routes.SetupCategoryRoutes(c.engine, &routes.CategoryRouteConfig{
		CategoryHandler: c.hdlrs.categoryHandler,
	})
	routes.SetupEventRoutes(c.engine, &routes.EventRouteConfig{
		EventHandler:         c.hdlrs.eventHandler,
		AuthMiddleware:       auth,
		PermissionMiddleware: perms,
	})
	routes.SetupOrderRoutes(c.engine, &routes.OrderRouteConfig{
		OrderHandler:         c.hdlrs.orderHandler,
		AuthMiddleware:       auth,
		PermissionMiddleware: perms,
		CheckoutLimiter:      c.checkoutLimiter,
	})
	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		AuthMiddleware:       auth,
		PermissionMiddleware: perms,
	})
	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		AdminHandler:         c.hdlrs.adminHandler,
		AuthMiddleware:       auth,
		PermissionMiddleware: perms,
	})
	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:     c.hdlrs.userHandler,
		IdentityHandler: c.hdlrs.identityHandler,
		AuthMiddleware:  auth,
	})
}
