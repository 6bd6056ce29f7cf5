package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/eventora/eventora/internal/shared/constants"
	"github.com/eventora/eventora/internal/shared/logger"
)

type staticEnforcer struct {
	allowed map[string]bool
	err     error
}

func (e *staticEnforcer) Enforce(role, resource, action string) (bool, error) {
	if e.err != nil {
		return false, e.err
	}
	return e.allowed[role+":"+resource+":"+action], nil
}

func permissionStatus(enforcer PolicyEnforcer, role string, authenticated bool) int {
	m := NewPermissionMiddleware(enforcer, logger.NewNop())
	r := gin.New()
	r.POST("/events", func(c *gin.Context) {
		if authenticated {
			c.Set(constants.ContextKeyUserID, uint(1))
			c.Set(constants.ContextKeyUserRole, role)
		}
		c.Next()
	}, m.RequirePermission("event", "create"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events", nil))
	return w.Code
}

func TestRequirePermission(t *testing.T) {
	enforcer := &staticEnforcer{allowed: map[string]bool{"organizer:event:create": true}}

	tests := []struct {
		name          string
		enforcer      PolicyEnforcer
		role          string
		authenticated bool
		want          int
	}{
		{"allowed role", enforcer, "organizer", true, http.StatusCreated},
		{"denied role", enforcer, "attendee", true, http.StatusForbidden},
		{"unauthenticated", enforcer, "", false, http.StatusUnauthorized},
		{"enforcer error", &staticEnforcer{err: errors.New("adapter closed")}, "organizer", true, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permissionStatus(tt.enforcer, tt.role, tt.authenticated))
		})
	}
}
