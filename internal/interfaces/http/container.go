package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/eventora/eventora/internal/infrastructure/auth"
	"github.com/eventora/eventora/internal/infrastructure/config"
	"github.com/eventora/eventora/internal/infrastructure/metrics"
	"github.com/eventora/eventora/internal/infrastructure/permission"
	"github.com/eventora/eventora/internal/infrastructure/ratelimit"
	"github.com/eventora/eventora/internal/infrastructure/scheduler"
	"github.com/eventora/eventora/internal/interfaces/http/handlers/webhook"
	"github.com/eventora/eventora/internal/interfaces/http/middleware"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and background services, and wires them together.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	txMgr    *db.TransactionManager
	registry prometheus.Registerer

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	jwtService      *auth.JWTService
	webhookVerifier *auth.WebhookVerifier
	deliveryGuard   webhook.DeliveryGuard
	enforcer        *permission.Enforcer
	limiter         ratelimit.Limiter
	ledgerMetrics   *metrics.LedgerMetrics

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	checkoutLimiter      *middleware.RateLimiter

	orderScheduler *scheduler.OrderScheduler
}

// NewContainer wires the application against db. registry receives the
// ledger collectors; pass prometheus.DefaultRegisterer in production.
func NewContainer(db *gorm.DB, cfg *config.Config, registry prometheus.Registerer, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:   gin.New(),
		db:       db,
		cfg:      cfg,
		log:      log,
		registry: registry,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	c.initMiddlewares()
	c.initHandlers()
	c.initSchedulers()

	return c, nil
}

// Engine returns the gin engine serving the API.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartBackground launches the background jobs bound to ctx.
func (c *Container) StartBackground(ctx context.Context) {
	if c.orderScheduler != nil {
		c.orderScheduler.Start(ctx)
	}
}

// Shutdown stops background jobs and releases the redis client.
func (c *Container) Shutdown() {
	if c.orderScheduler != nil {
		c.orderScheduler.Stop()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
