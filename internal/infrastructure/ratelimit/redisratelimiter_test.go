package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimiter_FirstHitOpensWindow(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRedisRateLimiter(client)

	mock.ExpectIncr("ratelimit:checkout:7").SetVal(1)
	mock.ExpectExpire("ratelimit:checkout:7", time.Minute).SetVal(true)

	allowed, err := limiter.Allow(context.Background(), "checkout:7", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRateLimiter_LaterHitsDoNotExtendWindow(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRedisRateLimiter(client)

	mock.ExpectIncr("ratelimit:checkout:7").SetVal(3)

	allowed, err := limiter.Allow(context.Background(), "checkout:7", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "the limit-th hit is still allowed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRateLimiter_DeniesOverLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRedisRateLimiter(client)

	mock.ExpectIncr("ratelimit:checkout:7").SetVal(4)

	allowed, err := limiter.Allow(context.Background(), "checkout:7", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRateLimiter_RedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRedisRateLimiter(client)

	mock.ExpectIncr("ratelimit:checkout:7").SetErr(errors.New("connection refused"))

	allowed, err := limiter.Allow(context.Background(), "checkout:7", 3, time.Minute)
	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestRedisRateLimiter_ZeroLimitDisables(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRedisRateLimiter(client)

	allowed, err := limiter.Allow(context.Background(), "checkout:7", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client, mock := redismock.NewClientMock()
	limiter := NewRedisRateLimiter(client)

	mock.ExpectDel("ratelimit:checkout:7").SetVal(1)

	require.NoError(t, limiter.Reset(context.Background(), "checkout:7"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNopLimiter(t *testing.T) {
	var l Limiter = NopLimiter{}
	for i := 0; i < 100; i++ {
		allowed, err := l.Allow(context.Background(), "k", 1, time.Second)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
