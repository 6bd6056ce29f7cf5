package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/domain/ticket"
	vo "github.com/eventora/eventora/internal/domain/ticket/valueobjects"
	"github.com/eventora/eventora/internal/shared/authorization"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
)

func TestCheckInTicket(t *testing.T) {
	h := newTicketHarness(t)
	ctx := context.Background()
	organizer := h.seedUser(t, "organizer")
	otherOrganizer := h.seedUser(t, "other-organizer")
	guest := h.seedUser(t, "guest")

	show := h.seedEvent(t, organizer.ID(), "show")
	otherShow := h.seedEvent(t, otherOrganizer.ID(), "other-show")
	issued := h.register(t, guest, h.seedTicketType(t, show.ID(), "GA", 0), 2)
	foreign := h.register(t, guest, h.seedTicketType(t, otherShow.ID(), "GA", 0), 1)

	doorTime := time.Date(2026, 11, 20, 17, 45, 0, 0, time.UTC)
	uc := NewCheckInTicketUseCase(h.events, h.ticketTypes, h.tickets, h.txMgr, h.log)
	uc.now = func() time.Time { return doorTime }

	staff := func(secret string) CheckInTicketCommand {
		return CheckInTicketCommand{
			EventID:   show.ID(),
			QRSecret:  secret,
			StaffID:   organizer.ID(),
			StaffRole: authorization.RoleOrganizer,
		}
	}

	t.Run("valid ticket is checked in", func(t *testing.T) {
		result, err := uc.Execute(ctx, staff(issued[0].QRSecret()))
		require.NoError(t, err)
		assert.Equal(t, issued[0].ID(), result.Ticket.ID)
		assert.Equal(t, "checked_in", result.Ticket.Status)
		assert.Equal(t, guest.ID(), result.AttendeeID)
		assert.True(t, doorTime.Equal(result.CheckedInAt))
		assert.Equal(t, "GA", result.Ticket.TicketType.Name)

		stored, err := h.tickets.GetByID(ctx, issued[0].ID())
		require.NoError(t, err)
		assert.Equal(t, vo.TicketStatusCheckedIn, stored.Status())
		require.NotNil(t, stored.CheckedInBy())
		assert.Equal(t, organizer.ID(), *stored.CheckedInBy())
	})

	t.Run("second scan conflicts", func(t *testing.T) {
		_, err := uc.Execute(ctx, staff(issued[0].QRSecret()))
		assert.ErrorIs(t, err, ticket.ErrAlreadyCheckedIn)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("voided ticket conflicts", func(t *testing.T) {
		require.NoError(t, issued[1].Void())
		require.NoError(t, h.tickets.Update(ctx, issued[1]))

		_, err := uc.Execute(ctx, staff(issued[1].QRSecret()))
		assert.ErrorIs(t, err, ticket.ErrTicketVoided)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("ticket for another event", func(t *testing.T) {
		_, err := uc.Execute(ctx, staff(foreign[0].QRSecret()))
		assert.ErrorIs(t, err, ticket.ErrTicketWrongEvent)

		stored, err := h.tickets.GetByID(ctx, foreign[0].ID())
		require.NoError(t, err)
		assert.Equal(t, vo.TicketStatusValid, stored.Status())
	})

	t.Run("unknown secret", func(t *testing.T) {
		_, err := uc.Execute(ctx, staff("not-a-ticket"))
		assert.ErrorIs(t, err, ticket.ErrTicketNotFound)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("blank secret", func(t *testing.T) {
		_, err := uc.Execute(ctx, staff("  "))
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("organizer of another event is refused", func(t *testing.T) {
		_, err := uc.Execute(ctx, CheckInTicketCommand{
			EventID:   show.ID(),
			QRSecret:  foreign[0].QRSecret(),
			StaffID:   otherOrganizer.ID(),
			StaffRole: authorization.RoleOrganizer,
		})
		assert.True(t, apperrors.IsForbiddenError(err))
	})
}

func TestVoidTicket(t *testing.T) {
	h := newTicketHarness(t)
	ctx := context.Background()
	organizer := h.seedUser(t, "organizer")
	admin := h.seedUser(t, "admin")
	guest := h.seedUser(t, "guest")

	show := h.seedEvent(t, organizer.ID(), "show")
	issued := h.register(t, guest, h.seedTicketType(t, show.ID(), "GA", 0), 2)

	uc := NewVoidTicketUseCase(h.events, h.tickets, h.txMgr, h.log)

	err := uc.Execute(ctx, VoidTicketCommand{TicketID: issued[0].ID(), StaffID: guest.ID(), StaffRole: authorization.RoleAttendee})
	assert.True(t, apperrors.IsForbiddenError(err))

	require.NoError(t, uc.Execute(ctx, VoidTicketCommand{TicketID: issued[0].ID(), StaffID: organizer.ID(), StaffRole: authorization.RoleOrganizer}))
	require.NoError(t, uc.Execute(ctx, VoidTicketCommand{TicketID: issued[1].ID(), StaffID: admin.ID(), StaffRole: authorization.RoleAdmin}))

	stored, err := h.tickets.GetByID(ctx, issued[0].ID())
	require.NoError(t, err)
	assert.True(t, stored.IsVoided())

	err = uc.Execute(ctx, VoidTicketCommand{TicketID: issued[0].ID(), StaffID: organizer.ID(), StaffRole: authorization.RoleOrganizer})
	assert.ErrorIs(t, err, ticket.ErrTicketVoided)
	assert.True(t, apperrors.IsConflictError(err))

	err = uc.Execute(ctx, VoidTicketCommand{TicketID: 999, StaffID: organizer.ID(), StaffRole: authorization.RoleOrganizer})
	assert.True(t, apperrors.IsNotFoundError(err))
}
