package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "github.com/eventora/eventora/internal/interfaces/http/handlers/user"
	"github.com/eventora/eventora/internal/interfaces/http/handlers/webhook"
	"github.com/eventora/eventora/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler     *userhandlers.Handler
	IdentityHandler *webhook.IdentityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	engine.GET("/users/me", config.AuthMiddleware.RequireAuth(), config.UserHandler.GetMe)

	// Signed by the identity provider instead of a bearer token
	engine.POST("/webhooks/identity", config.IdentityHandler.HandleIdentityEvent)
}
