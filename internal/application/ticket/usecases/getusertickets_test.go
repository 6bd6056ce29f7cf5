package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/application/ticket/dto"
)

func TestGetUserTickets(t *testing.T) {
	h := newTicketHarness(t)
	ctx := context.Background()
	organizer := h.seedUser(t, "organizer")
	guest := h.seedUser(t, "guest")
	other := h.seedUser(t, "other")

	concert := h.seedEvent(t, organizer.ID(), "concert")
	meetup := h.seedEvent(t, organizer.ID(), "meetup")
	concertFree := h.seedTicketType(t, concert.ID(), "Standing", 0)
	meetupFree := h.seedTicketType(t, meetup.ID(), "Seat", 0)

	h.register(t, guest, concertFree, 2)
	later := h.register(t, guest, meetupFree, 1)
	h.register(t, other, concertFree, 1)

	require.NoError(t, later[0].Void())
	require.NoError(t, h.tickets.Update(ctx, later[0]))

	uc := NewGetUserTicketsUseCase(h.events, h.ticketTypes, h.tickets, h.log)

	groups, err := uc.Execute(ctx, GetUserTicketsQuery{UserID: guest.ID()})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, meetup.ID(), groups[0].Event.ID, "most recent purchase first")
	require.Len(t, groups[0].Tickets, 1)
	assert.Equal(t, "voided", groups[0].Tickets[0].Status, "voided tickets are still listed")
	assert.Equal(t, "Seat", groups[0].Tickets[0].TicketType.Name)

	assert.Equal(t, concert.ID(), groups[1].Event.ID)
	require.Len(t, groups[1].Tickets, 2)
	assert.Greater(t, groups[1].Tickets[0].ID, groups[1].Tickets[1].ID)
	for _, tk := range groups[1].Tickets {
		assert.Equal(t, concert.ID(), tk.EventID)
		assert.Equal(t, "Standing", tk.TicketType.Name)
	}
}

func TestGetUserTickets_NoTickets(t *testing.T) {
	h := newTicketHarness(t)
	guest := h.seedUser(t, "guest")
	uc := NewGetUserTicketsUseCase(h.events, h.ticketTypes, h.tickets, h.log)

	groups, err := uc.Execute(context.Background(), GetUserTicketsQuery{UserID: guest.ID()})
	require.NoError(t, err)
	assert.Equal(t, []dto.EventTicketsDTO{}, groups)

	groups, err = uc.Execute(context.Background(), GetUserTicketsQuery{})
	require.NoError(t, err)
	assert.Empty(t, groups)
}
