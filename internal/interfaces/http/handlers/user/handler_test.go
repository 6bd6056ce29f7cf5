package user

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/application/user/dto"
	"github.com/eventora/eventora/internal/interfaces/http/handlers/testutil"
	"github.com/eventora/eventora/internal/shared/errors"
)

type mockGetCurrentUserUC struct {
	result *dto.UserResponse
	err    error
}

func (m *mockGetCurrentUserUC) Execute(_ context.Context, userID uint) (*dto.UserResponse, error) {
	if m.result != nil {
		m.result.ID = userID
	}
	return m.result, m.err
}

func TestHandler_GetMe_Success(t *testing.T) {
	handler := NewHandler(&mockGetCurrentUserUC{result: &dto.UserResponse{Email: "ada@example.com", Role: "attendee"}}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/users/me", nil)
	testutil.SetAuthContext(c, 42)

	handler.GetMe(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, uint(42), me.ID)
	assert.Equal(t, "ada@example.com", me.Email)
}

func TestHandler_GetMe_Errors(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		handler := NewHandler(&mockGetCurrentUserUC{}, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/users/me", nil)

		handler.GetMe(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user removed", func(t *testing.T) {
		handler := NewHandler(&mockGetCurrentUserUC{err: errors.NewNotFoundError("user not found")}, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/users/me", nil)
		testutil.SetAuthContext(c, 42)

		handler.GetMe(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_HealthCheck(t *testing.T) {
	handler := NewHandler(nil, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

	handler.HealthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"eventora"}`, w.Body.String())
}
