package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	orderUsecases "github.com/eventora/eventora/internal/application/order/usecases"
	"github.com/eventora/eventora/internal/infrastructure/auth"
	"github.com/eventora/eventora/internal/infrastructure/email"
	"github.com/eventora/eventora/internal/infrastructure/metrics"
	"github.com/eventora/eventora/internal/infrastructure/permission"
	"github.com/eventora/eventora/internal/infrastructure/ratelimit"
	"github.com/eventora/eventora/internal/infrastructure/scheduler"
	"github.com/eventora/eventora/internal/interfaces/http/middleware"
	"github.com/eventora/eventora/internal/shared/db"
)

const redisPingTimeout = 5 * time.Second

func (c *Container) initInfrastructure() error {
	c.txMgr = db.NewTransactionManager(c.db)

	c.limiter = ratelimit.NopLimiter{}
	c.deliveryGuard = auth.NewMemoryDeliveryGuard(auth.DefaultDeliveryTTL)
	if c.cfg.Redis.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := c.redis.Ping(ctx).Err(); err != nil {
			// rate limiting fails open, so an unreachable redis is not fatal
			c.log.Warnw("redis ping failed, checkout rate limiting degraded", "addr", c.cfg.Redis.GetAddr(), "error", err)
		}
		c.limiter = ratelimit.NewRedisRateLimiter(c.redis)
		c.deliveryGuard = auth.NewRedisDeliveryGuard(c.redis, auth.DefaultDeliveryTTL)
	}

	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer)
	verifier, err := auth.NewWebhookVerifier(c.cfg.Auth.WebhookSecret)
	if err != nil {
		return err
	}
	c.webhookVerifier = verifier
	if c.cfg.Auth.WebhookSecret == "" {
		c.log.Warnw("identity webhook secret not set, identity sync disabled")
	}

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer

	if c.cfg.Metrics.Enabled {
		c.ledgerMetrics = metrics.NewLedgerMetrics(c.registry)
	}

	return nil
}

func (c *Container) ledgerRecorder() orderUsecases.LedgerRecorder {
	if c.ledgerMetrics == nil {
		return orderUsecases.NopRecorder()
	}
	return c.ledgerMetrics
}

func (c *Container) confirmationSender() orderUsecases.ConfirmationSender {
	if !c.cfg.Email.Enabled {
		return email.NewNopEmailService(c.log)
	}
	return email.NewSMTPEmailService(&c.cfg.Email)
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.ucs.getCurrentUser, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.checkoutLimiter = middleware.NewRateLimiter(
		c.limiter,
		"checkout",
		c.cfg.RateLimit.CheckoutPerMinute,
		time.Minute,
		c.log,
	)
}

func (c *Container) initSchedulers() {
	if !c.cfg.Ledger.ReleaseExpired {
		c.log.Infow("expired order release disabled")
		return
	}
	c.orderScheduler = scheduler.NewOrderScheduler(c.ucs.releaseExpiredOrders, c.cfg.Ledger.SweepInterval(), c.log)
}
