package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/domain/user"
	vo "github.com/eventora/eventora/internal/domain/user/valueobjects"
	"github.com/eventora/eventora/internal/infrastructure/auth"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/constants"
	"github.com/eventora/eventora/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockResolver struct {
	users map[string]*user.User
	err   error
}

func (m *mockResolver) ResolveIdentity(_ context.Context, externalID string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[externalID]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func mustUser(t *testing.T, id uint, externalID string, role authorization.UserRole, status vo.Status) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, externalID, user.Profile{
		Email:     externalID + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	}, role, status, now, now)
	require.NoError(t, err)
	return u
}

func newAuthRouter(resolver IdentityResolver, optional bool) (*gin.Engine, *auth.JWTService) {
	jwtService := auth.NewJWTService("test-secret", "")
	m := NewAuthMiddleware(jwtService, resolver, logger.NewNop())

	handler := m.RequireAuth()
	if optional {
		handler = m.OptionalAuth()
	}

	r := gin.New()
	r.GET("/whoami", handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(constants.ContextKeyUserID),
			"role":    c.GetString(constants.ContextKeyUserRole),
		})
	})
	return r, jwtService
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	resolver := &mockResolver{users: map[string]*user.User{}}
	r, jwtService := newAuthRouter(resolver, false)
	resolver.users["user_active"] = mustUser(t, 5, "user_active", authorization.RoleOrganizer, vo.StatusActive)
	resolver.users["user_suspended"] = mustUser(t, 6, "user_suspended", authorization.RoleAttendee, vo.StatusSuspended)

	sign := func(sub string) string {
		token, err := jwtService.Sign(sub, sub+"@example.com", time.Hour)
		require.NoError(t, err)
		return token
	}

	t.Run("active user", func(t *testing.T) {
		w := doRequest(r, sign("user_active"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":5,"role":"organizer"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "not-a-jwt").Code)
	})

	t.Run("unknown subject", func(t *testing.T) {
		w := doRequest(r, sign("user_unknown"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "user not synced")
	})

	t.Run("suspended user", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, doRequest(r, sign("user_suspended")).Code)
	})
}

func TestRequireAuth_ResolverFailure(t *testing.T) {
	r, jwtService := newAuthRouter(&mockResolver{err: errors.New("db down")}, false)
	token, err := jwtService.Sign("user_active", "a@example.com", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, doRequest(r, token).Code)
}

func TestOptionalAuth(t *testing.T) {
	resolver := &mockResolver{users: map[string]*user.User{}}
	r, jwtService := newAuthRouter(resolver, true)
	resolver.users["user_active"] = mustUser(t, 5, "user_active", authorization.RoleAttendee, vo.StatusActive)

	t.Run("anonymous", func(t *testing.T) {
		w := doRequest(r, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":0,"role":""}`, w.Body.String())
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, doRequest(r, "not-a-jwt").Code)
	})

	t.Run("known user", func(t *testing.T) {
		token, err := jwtService.Sign("user_active", "a@example.com", time.Hour)
		require.NoError(t, err)
		w := doRequest(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":5,"role":"attendee"}`, w.Body.String())
	})
}
