package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/user"
	vo "github.com/eventora/eventora/internal/domain/user/valueobjects"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/db"
)

func TestUserRepository(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	u := f.createUser(t, "user_abc")

	t.Run("lookup by external id", func(t *testing.T) {
		found, err := f.users.GetByExternalID(ctx, "user_abc")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), found.ID())
		assert.Equal(t, authorization.RoleAttendee, found.Role())
		assert.Equal(t, vo.StatusActive, found.Status())

		_, err = f.users.GetByExternalID(ctx, "missing")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("profile sync keeps role", func(t *testing.T) {
		require.NoError(t, u.ChangeRole(authorization.RoleOrganizer))
		require.NoError(t, f.users.Update(ctx, u))
		require.NoError(t, u.SyncProfile(user.Profile{Email: "new@example.com", FirstName: "New"}))
		require.NoError(t, f.users.Update(ctx, u))

		found, err := f.users.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", found.Email())
		assert.Equal(t, authorization.RoleOrganizer, found.Role())
	})

	t.Run("contact fields persist", func(t *testing.T) {
		require.NoError(t, u.SyncProfile(user.Profile{
			Email:    "new@example.com",
			Username: "ada",
			Phone:    "+15550100",
		}))
		require.NoError(t, f.users.Update(ctx, u))

		found, err := f.users.GetByExternalID(ctx, "user_abc")
		require.NoError(t, err)
		assert.Equal(t, "ada", found.Username())
		assert.Equal(t, "+15550100", found.Phone())
	})

	t.Run("duplicate external id rejected", func(t *testing.T) {
		dup, err := user.NewUser("user_abc", user.Profile{Email: "dup@example.com"})
		require.NoError(t, err)
		assert.Error(t, f.users.Create(ctx, dup))
	})

	t.Run("lock inside transaction", func(t *testing.T) {
		txMgr := db.NewTransactionManager(f.db)
		err := txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			return f.users.LockByID(txCtx, u.ID())
		})
		assert.NoError(t, err)
		assert.ErrorIs(t, f.users.LockByID(ctx, 99999), user.ErrUserNotFound)
	})

	t.Run("delete by external id", func(t *testing.T) {
		other := f.createUser(t, "user_gone")
		require.NoError(t, f.users.DeleteByExternalID(ctx, "user_gone"))
		_, err := f.users.GetByID(ctx, other.ID())
		assert.ErrorIs(t, err, user.ErrUserNotFound)
		assert.ErrorIs(t, f.users.DeleteByExternalID(ctx, "user_gone"), user.ErrUserNotFound)
	})
}

func TestCategoryRepository_Upsert(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()

	music, err := category.NewCategory("Music", "music", "Concerts", "music", "#ff0000", 2)
	require.NoError(t, err)
	require.NoError(t, f.categories.Upsert(ctx, music))
	tech, err := category.NewCategory("Tech", "tech", "Meetups", "cpu", "#00ff00", 1)
	require.NoError(t, err)
	require.NoError(t, f.categories.Upsert(ctx, tech))

	renamed, err := category.NewCategory("Live Music", "music", "Concerts and gigs", "music", "#ff0000", 3)
	require.NoError(t, err)
	require.NoError(t, f.categories.Upsert(ctx, renamed))

	categories, err := f.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Tech", categories[0].Name())
	assert.Equal(t, "Live Music", categories[1].Name())

	_, err = f.categories.GetByID(ctx, 555)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
