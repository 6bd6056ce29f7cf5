package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/shared/authorization"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
)

func TestReviewEvent(t *testing.T) {
	h := newCatalogHarness(t)
	ctx := context.Background()
	organizer := h.seedUser(t, "organizer", authorization.RoleOrganizer)
	admin := h.seedUser(t, "admin", authorization.RoleAdmin)

	created, err := h.createEvents().Execute(ctx, CreateEventCommand{
		OrganizerID: organizer.ID(), OrganizerRole: organizer.Role(), Event: eventInput("Review Me", concertStart),
	})
	require.NoError(t, err)

	reviewedAt := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	uc := h.reviews()
	uc.now = func() time.Time { return reviewedAt }

	t.Run("anonymous", func(t *testing.T) {
		_, err := uc.Execute(ctx, ReviewEventCommand{EventID: created.EventID, Decision: "approve"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, apperrors.GetAppError(err).Type)
	})

	t.Run("organizer cannot review", func(t *testing.T) {
		_, err := uc.Execute(ctx, ReviewEventCommand{
			EventID: created.EventID, ReviewerID: organizer.ID(), ReviewerRole: organizer.Role(), Decision: "approve",
		})
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("unknown decision", func(t *testing.T) {
		_, err := uc.Execute(ctx, ReviewEventCommand{
			EventID: created.EventID, ReviewerID: admin.ID(), ReviewerRole: admin.Role(), Decision: "maybe",
		})
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := uc.Execute(ctx, ReviewEventCommand{
			EventID: 404, ReviewerID: admin.ID(), ReviewerRole: admin.Role(), Decision: "approve",
		})
		assert.ErrorIs(t, err, event.ErrEventNotFound)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("approval publishes", func(t *testing.T) {
		result, err := uc.Execute(ctx, ReviewEventCommand{
			EventID: created.EventID, ReviewerID: admin.ID(), ReviewerRole: admin.Role(),
			Decision: "approve", Notes: "  looks good ",
		})
		require.NoError(t, err)
		assert.Equal(t, "approved", result.Status)
		assert.True(t, result.IsPublished)

		stored, err := h.events.GetByID(ctx, created.EventID)
		require.NoError(t, err)
		assert.True(t, stored.IsPubliclyVisible())
		assert.Equal(t, "looks good", stored.ApprovalNotes())
		require.NotNil(t, stored.ReviewedBy())
		assert.Equal(t, admin.ID(), *stored.ReviewedBy())
		require.NotNil(t, stored.ReviewedAt())
		assert.True(t, reviewedAt.Equal(*stored.ReviewedAt()))
	})

	t.Run("decisions are final", func(t *testing.T) {
		_, err := uc.Execute(ctx, ReviewEventCommand{
			EventID: created.EventID, ReviewerID: admin.ID(), ReviewerRole: admin.Role(), Decision: "reject",
		})
		assert.ErrorIs(t, err, event.ErrEventAlreadyReviewed)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestListPublishedEvents(t *testing.T) {
	h := newCatalogHarness(t)
	ctx := context.Background()
	organizer := h.seedUser(t, "organizer", authorization.RoleOrganizer)
	admin := h.seedUser(t, "admin", authorization.RoleAdmin)
	music := h.seedCategory(t, "music")

	late := eventInput("Winter Jazz", concertStart.AddDate(0, 1, 0))
	late.CategoryID = music.ID()
	lateID := h.publish(t, organizer, admin, late,
		ticketInput("Standard", 2500, 100),
		ticketInput("VIP", 9000, 10),
		TicketTypeInput{Name: "Crew", Currency: "EUR", TotalQuantity: 500, Hidden: true},
	)
	earlyID := h.publish(t, organizer, admin, eventInput("Autumn Folk", concertStart), ticketInput("Free entry", 0, 0))
	_, err := h.createEvents().Execute(ctx, CreateEventCommand{
		OrganizerID: organizer.ID(), OrganizerRole: organizer.Role(), Event: eventInput("Unreviewed Jazz", concertStart),
	})
	require.NoError(t, err)

	uc := NewListPublishedEventsUseCase(h.events, h.ticketTypes, h.categories, h.users, h.log)

	items, err := uc.Execute(ctx, ListPublishedEventsQuery{})
	require.NoError(t, err)
	require.Len(t, items, 2, "drafts are never listed")
	assert.Equal(t, earlyID, items[0].ID, "sorted by start date")
	assert.True(t, items[0].IsSoldOut)
	assert.Nil(t, items[0].Category)

	jazz := items[1]
	assert.Equal(t, lateID, jazz.ID)
	assert.Equal(t, int64(2500), jazz.PriceRange.Min)
	assert.Equal(t, int64(9000), jazz.PriceRange.Max)
	assert.Equal(t, "EUR", jazz.PriceRange.Currency)
	assert.Equal(t, 110, jazz.AvailableTickets, "hidden ticket types are excluded")
	assert.False(t, jazz.IsSoldOut)
	require.NotNil(t, jazz.Category)
	assert.Equal(t, "music", jazz.Category.Slug)
	require.NotNil(t, jazz.Organizer)
	assert.Equal(t, "Org organizer", jazz.Organizer.Name)

	items, err = uc.Execute(ctx, ListPublishedEventsQuery{Search: "  JAZZ "})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, lateID, items[0].ID)

	items, err = uc.Execute(ctx, ListPublishedEventsQuery{CategoryID: music.ID() + 1})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetEventBySlug(t *testing.T) {
	h := newCatalogHarness(t)
	ctx := context.Background()
	organizer := h.seedUser(t, "organizer", authorization.RoleOrganizer)
	admin := h.seedUser(t, "admin", authorization.RoleAdmin)

	input := eventInput("Open Air", concertStart)
	input.Description = "## Line-up\n\n<script>alert(1)</script>\n\n- Band A"
	h.publish(t, organizer, admin, input,
		ticketInput("Lawn", 1500, 200),
		TicketTypeInput{Name: "Press", Currency: "EUR", TotalQuantity: 20, Hidden: true},
	)
	_, err := h.createEvents().Execute(ctx, CreateEventCommand{
		OrganizerID: organizer.ID(), OrganizerRole: organizer.Role(), Event: eventInput("Still Pending", concertStart),
	})
	require.NoError(t, err)

	uc := NewGetEventBySlugUseCase(h.events, h.ticketTypes, h.categories, h.users, h.renderer, h.log)

	detail, err := uc.Execute(ctx, "open-air")
	require.NoError(t, err)
	assert.Equal(t, "Open Air", detail.Title)
	assert.Contains(t, detail.DescriptionHTML, `<h2 id="line-up">Line-up</h2>`)
	assert.NotContains(t, detail.DescriptionHTML, "<script>")
	require.Len(t, detail.TicketTypes, 1)
	assert.Equal(t, "Lawn", detail.TicketTypes[0].Name)
	require.NotNil(t, detail.Organizer)

	_, err = uc.Execute(ctx, "still-pending")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListOrganizerEvents(t *testing.T) {
	h := newCatalogHarness(t)
	ctx := context.Background()
	organizer := h.seedUser(t, "organizer", authorization.RoleOrganizer)
	other := h.seedUser(t, "other", authorization.RoleOrganizer)

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	titles := map[string]time.Time{
		"Past Recent":   now.AddDate(0, 0, -2),
		"Past Old":      now.AddDate(0, -3, 0),
		"Upcoming Soon": now.AddDate(0, 0, 3),
		"Upcoming Late": now.AddDate(0, 2, 0),
	}
	for title, start := range titles {
		_, err := h.createEvents().Execute(ctx, CreateEventCommand{
			OrganizerID:   organizer.ID(),
			OrganizerRole: organizer.Role(),
			Event:         eventInput(title, start),
			TicketTypes:   []TicketTypeInput{{Name: "Hidden", Currency: "EUR", TotalQuantity: 1, Hidden: true}},
		})
		require.NoError(t, err)
	}
	_, err := h.createEvents().Execute(ctx, CreateEventCommand{
		OrganizerID: other.ID(), OrganizerRole: other.Role(), Event: eventInput("Not Mine", now),
	})
	require.NoError(t, err)

	uc := NewListOrganizerEventsUseCase(h.events, h.ticketTypes, h.tickets, h.categories, h.log)
	uc.now = func() time.Time { return now }

	events, err := uc.Execute(ctx, ListOrganizerEventsQuery{OrganizerID: organizer.ID()})
	require.NoError(t, err)
	var got []string
	for _, e := range events {
		got = append(got, e.Title)
		assert.Len(t, e.TicketTypes, 1, "organizers see hidden ticket types")
	}
	assert.Equal(t, []string{"Upcoming Soon", "Upcoming Late", "Past Recent", "Past Old"}, got)
}

func TestListOrganizerEvents_Stats(t *testing.T) {
	h := newCatalogHarness(t)
	ctx := context.Background()
	organizer := h.seedUser(t, "organizer", authorization.RoleOrganizer)
	admin := h.seedUser(t, "admin", authorization.RoleAdmin)
	buyer := h.seedUser(t, "buyer", authorization.RoleAttendee)

	created, err := h.createEvents().Execute(ctx, CreateEventCommand{
		OrganizerID:   organizer.ID(),
		OrganizerRole: organizer.Role(),
		Event:         eventInput("Busy Night", concertStart),
		TicketTypes:   []TicketTypeInput{ticketInput("Standing", 2500, 80), ticketInput("Balcony", 4000, 20)},
	})
	require.NoError(t, err)
	standing, balcony := created.TicketTypes[0], created.TicketTypes[1]
	h.publish(t, organizer, admin, eventInput("Quiet Night", concertStart.AddDate(0, 0, 1)))

	sold := h.issue(t, standing.ID, created.EventID, buyer.ID(), 3)
	h.issue(t, balcony.ID, created.EventID, buyer.ID(), 1)
	require.NoError(t, sold[0].CheckIn(organizer.ID(), concertStart))
	require.NoError(t, h.tickets.Update(ctx, sold[0]))
	require.NoError(t, sold[1].Void())
	require.NoError(t, h.tickets.Update(ctx, sold[1]))

	uc := NewListOrganizerEventsUseCase(h.events, h.ticketTypes, h.tickets, h.categories, h.log)
	uc.now = func() time.Time { return concertStart.AddDate(0, -1, 0) }
	events, err := uc.Execute(ctx, ListOrganizerEventsQuery{OrganizerID: organizer.ID()})
	require.NoError(t, err)
	require.Len(t, events, 2)

	busy := events[0]
	assert.Equal(t, "Busy Night", busy.Title)
	assert.Equal(t, 3, busy.Stats.TotalTicketsSold, "voided tickets are not counted")
	assert.Equal(t, 1, busy.Stats.TotalCheckedIn)
	assert.Equal(t, int64(2*2500+4000), busy.Stats.TotalRevenue)
	assert.Equal(t, "EUR", busy.Stats.Currency)
	assert.Equal(t, 100, busy.Stats.TotalCapacity)

	quiet := events[1]
	assert.Equal(t, "Quiet Night", quiet.Title)
	assert.Zero(t, quiet.Stats.TotalTicketsSold)
	assert.Zero(t, quiet.Stats.TotalRevenue)
}

func TestGetManagedEvent(t *testing.T) {
	h := newCatalogHarness(t)
	ctx := context.Background()
	organizer := h.seedUser(t, "organizer", authorization.RoleOrganizer)
	other := h.seedUser(t, "other", authorization.RoleOrganizer)
	admin := h.seedUser(t, "admin", authorization.RoleAdmin)
	buyer := h.seedUser(t, "buyer", authorization.RoleAttendee)

	hidden := ticketInput("Crew", 0, 5)
	hidden.Hidden = true
	created, err := h.createEvents().Execute(ctx, CreateEventCommand{
		OrganizerID:   organizer.ID(),
		OrganizerRole: organizer.Role(),
		Event:         eventInput("Draft Gala", concertStart),
		TicketTypes:   []TicketTypeInput{ticketInput("Dinner", 9000, 40), hidden},
	})
	require.NoError(t, err)
	h.issue(t, created.TicketTypes[0].ID, created.EventID, buyer.ID(), 2)

	uc := NewGetManagedEventUseCase(h.events, h.ticketTypes, h.tickets, h.categories, h.users, h.log)

	t.Run("organizer sees pending draft", func(t *testing.T) {
		result, err := uc.Execute(ctx, GetManagedEventQuery{
			EventID: created.EventID, UserID: organizer.ID(), UserRole: organizer.Role(),
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", result.ApprovalStatus)
		assert.False(t, result.IsPublished)
		assert.Len(t, result.TicketTypes, 2, "hidden ticket types included")
		assert.Equal(t, 45, result.Stats.TotalCapacity)
		assert.Equal(t, 45, result.AvailableTickets)
		assert.Equal(t, int64(0), result.PriceRange.Min)
		assert.Equal(t, int64(9000), result.PriceRange.Max)
		assert.Equal(t, 2, result.Stats.TotalTicketsSold)
		assert.Equal(t, int64(18000), result.Stats.TotalRevenue)
		require.NotNil(t, result.Organizer)
		assert.Equal(t, organizer.Email(), result.Organizer.Email)
	})

	t.Run("admin allowed", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetManagedEventQuery{
			EventID: created.EventID, UserID: admin.ID(), UserRole: admin.Role(),
		})
		assert.NoError(t, err)
	})

	t.Run("other organizer forbidden", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetManagedEventQuery{
			EventID: created.EventID, UserID: other.ID(), UserRole: other.Role(),
		})
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetManagedEventQuery{EventID: 404, UserID: admin.ID(), UserRole: admin.Role()})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestListPendingEvents(t *testing.T) {
	h := newCatalogHarness(t)
	ctx := context.Background()
	organizer := h.seedUser(t, "organizer", authorization.RoleOrganizer)
	admin := h.seedUser(t, "admin", authorization.RoleAdmin)

	h.publish(t, organizer, admin, eventInput("Already Live", concertStart))
	for _, title := range []string{"First In Queue", "Second In Queue"} {
		_, err := h.createEvents().Execute(ctx, CreateEventCommand{
			OrganizerID: organizer.ID(), OrganizerRole: organizer.Role(), Event: eventInput(title, concertStart),
		})
		require.NoError(t, err)
	}

	uc := NewListPendingEventsUseCase(h.events, h.ticketTypes, h.categories, h.users, h.log)

	_, err := uc.Execute(ctx, ListPendingEventsQuery{UserRole: authorization.RoleOrganizer})
	assert.True(t, apperrors.IsForbiddenError(err))

	pending, err := uc.Execute(ctx, ListPendingEventsQuery{UserRole: authorization.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "First In Queue", pending[0].Title)
	assert.Equal(t, "pending", pending[0].ApprovalStatus)
}
