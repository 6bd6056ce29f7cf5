package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/domain/event"
	eventvo "github.com/eventora/eventora/internal/domain/event/valueobjects"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/domain/waitlist"
	"github.com/eventora/eventora/internal/infrastructure/persistence/testdb"
	"github.com/eventora/eventora/internal/infrastructure/repository"
	"github.com/eventora/eventora/internal/shared/db"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
	"github.com/eventora/eventora/internal/shared/logger"
)

func TestJoinWaitlist(t *testing.T) {
	gdb := testdb.New(t)
	ctx := context.Background()
	users := repository.NewUserRepository(gdb)
	events := repository.NewEventRepository(gdb)
	entries := repository.NewWaitlistRepository(gdb)

	seedUser := func(ext string) *user.User {
		u, err := user.NewUser(ext, user.Profile{Email: ext + "@example.com"})
		require.NoError(t, err)
		require.NoError(t, users.Create(ctx, u))
		return u
	}
	organizer := seedUser("organizer")
	fan := seedUser("fan")

	seedEvent := func(slug string, approve bool) *event.Event {
		start := time.Date(2026, 12, 1, 20, 0, 0, 0, time.UTC)
		e, err := event.NewEvent(organizer.ID(), slug, event.Details{Title: slug, StartDate: start, EndDate: start.Add(time.Hour)})
		require.NoError(t, err)
		if approve {
			require.NoError(t, e.Review(eventvo.DecisionApprove, organizer.ID(), "", start))
		}
		require.NoError(t, events.Create(ctx, e))
		return e
	}
	soldOut := seedEvent("sold-out", true)
	draft := seedEvent("draft", false)

	uc := NewJoinWaitlistUseCase(events, entries, db.NewTransactionManager(gdb), logger.NewNop())

	first, err := uc.Execute(ctx, JoinWaitlistCommand{EventID: soldOut.ID(), UserID: fan.ID()})
	require.NoError(t, err)
	assert.True(t, first.Joined)
	assert.Equal(t, "waiting", first.Status)

	again, err := uc.Execute(ctx, JoinWaitlistCommand{EventID: soldOut.ID(), UserID: fan.ID()})
	require.NoError(t, err)
	assert.False(t, again.Joined)
	assert.Equal(t, first.EntryID, again.EntryID)

	count, err := entries.CountByEvent(ctx, soldOut.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = uc.Execute(ctx, JoinWaitlistCommand{EventID: draft.ID(), UserID: fan.ID()})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = uc.Execute(ctx, JoinWaitlistCommand{EventID: soldOut.ID()})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.GetAppError(err).Type)
}

// A second insert for the same pair hits the unique key, which is how a
// concurrent join that passed the existence check is detected.
func TestWaitlistRepository_DuplicateInsertIsAlreadyJoined(t *testing.T) {
	gdb := testdb.New(t)
	ctx := context.Background()
	entries := repository.NewWaitlistRepository(gdb)
	now := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)

	first, err := waitlist.NewEntry(3, 9, now)
	require.NoError(t, err)
	require.NoError(t, entries.Create(ctx, first))

	dup, err := waitlist.NewEntry(3, 9, now)
	require.NoError(t, err)
	assert.ErrorIs(t, entries.Create(ctx, dup), waitlist.ErrAlreadyJoined)
}
