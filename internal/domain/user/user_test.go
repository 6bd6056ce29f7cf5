package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/eventora/eventora/internal/domain/user/valueobjects"
	"github.com/eventora/eventora/internal/shared/authorization"
)

func TestNewUser_DefaultsToActiveAttendee(t *testing.T) {
	u, err := NewUser("idp_123", Profile{Email: " Ada@Example.com ", FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	assert.Equal(t, "idp_123", u.ExternalID())
	assert.Equal(t, "ada@example.com", u.Email())
	assert.Equal(t, authorization.RoleAttendee, u.Role())
	assert.Equal(t, vo.StatusActive, u.Status())
	assert.Equal(t, "Ada Lovelace", u.DisplayName())
}

func TestNewUser_RequiresIdentityAndEmail(t *testing.T) {
	_, err := NewUser("", Profile{Email: "a@example.com"})
	assert.Error(t, err)

	_, err = NewUser("idp_1", Profile{Email: "not-an-email"})
	assert.Error(t, err)
}

func TestSyncProfile_KeepsRoleAndStatus(t *testing.T) {
	u, err := NewUser("idp_123", Profile{Email: "ada@example.com"})
	require.NoError(t, err)
	require.NoError(t, u.ChangeRole(authorization.RoleOrganizer))
	require.NoError(t, u.ChangeStatus(vo.StatusSuspended))

	require.NoError(t, u.SyncProfile(Profile{Email: "ada@lovelace.dev", FirstName: "Ada"}))

	assert.Equal(t, "ada@lovelace.dev", u.Email())
	assert.Equal(t, authorization.RoleOrganizer, u.Role())
	assert.Equal(t, vo.StatusSuspended, u.Status())
	assert.False(t, u.IsActive())
}

func TestChangeRole_RejectsUnknownRole(t *testing.T) {
	u, err := NewUser("idp_123", Profile{Email: "ada@example.com"})
	require.NoError(t, err)

	err = u.ChangeRole(authorization.UserRole("superuser"))
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Equal(t, authorization.RoleAttendee, u.Role())
}

func TestDisplayName_FallsBackToEmail(t *testing.T) {
	u, err := NewUser("idp_9", Profile{Email: "guest@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", u.DisplayName())
}
