package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/infrastructure/auth"
	"github.com/eventora/eventora/internal/shared/constants"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/utils"
)

// TokenVerifier validates identity provider bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.IdentityClaims, error)
}

// IdentityResolver maps a token subject to its local user.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, externalID string) (*user.User, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	resolver IdentityResolver
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, resolver IdentityResolver, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		resolver: resolver,
		logger:   logger,
	}
}

// RequireAuth admits requests carrying a valid token whose subject has been
// synced to an active local user.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.resolver.ResolveIdentity(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "user not synced")
				c.Abort()
				return
			}
			m.logger.Errorw("failed to resolve identity", "external_id", claims.Subject, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
			c.Abort()
			return
		}

		if !u.IsActive() {
			m.logger.Warnw("suspended user rejected", "user_id", u.ID())
			utils.ErrorResponse(c, http.StatusForbidden, "account suspended")
			c.Abort()
			return
		}

		setIdentity(c, u)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when one can be resolved and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err == nil {
			if u, err := m.resolver.ResolveIdentity(c.Request.Context(), claims.Subject); err == nil && u.IsActive() {
				setIdentity(c, u)
			}
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c *gin.Context, u *user.User) {
	c.Set(constants.ContextKeyUserID, u.ID())
	c.Set(constants.ContextKeyUserRole, u.Role().String())
	c.Set(constants.ContextKeyExternalID, u.ExternalID())
}
