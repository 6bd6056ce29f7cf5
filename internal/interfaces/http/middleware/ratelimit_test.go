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

	"github.com/eventora/eventora/internal/infrastructure/ratelimit"
	"github.com/eventora/eventora/internal/shared/constants"
	"github.com/eventora/eventora/internal/shared/logger"
)

type countingLimiter struct {
	counts map[string]int
	err    error
}

func (l *countingLimiter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	l.counts[key]++
	return l.counts[key] <= limit, nil
}

func (l *countingLimiter) Reset(_ context.Context, key string) error {
	delete(l.counts, key)
	return nil
}

func newLimitedRouter(limiter ratelimit.Limiter, limit int) *gin.Engine {
	rl := NewRateLimiter(limiter, "checkout", limit, time.Minute, logger.NewNop())
	r := gin.New()
	r.POST("/orders/free", func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id == "7" {
			c.Set(constants.ContextKeyUserID, uint(7))
		}
		c.Next()
	}, rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func postOrder(r *gin.Engine, user string) int {
	req := httptest.NewRequest(http.MethodPost, "/orders/free", nil)
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_PerUserWindow(t *testing.T) {
	limiter := &countingLimiter{counts: map[string]int{}}
	r := newLimitedRouter(limiter, 2)

	assert.Equal(t, http.StatusCreated, postOrder(r, "7"))
	assert.Equal(t, http.StatusCreated, postOrder(r, "7"))
	assert.Equal(t, http.StatusTooManyRequests, postOrder(r, "7"))
	assert.Equal(t, 3, limiter.counts["checkout:7"])

	// anonymous callers are keyed by IP and have their own budget
	assert.Equal(t, http.StatusCreated, postOrder(r, ""))
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	r := newLimitedRouter(&countingLimiter{err: errors.New("redis: connection refused")}, 1)

	assert.Equal(t, http.StatusCreated, postOrder(r, "7"))
	assert.Equal(t, http.StatusCreated, postOrder(r, "7"))
}

func TestRateLimiter_NopLimiter(t *testing.T) {
	r := newLimitedRouter(ratelimit.NopLimiter{}, 1)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusCreated, postOrder(r, "7"))
	}
}
