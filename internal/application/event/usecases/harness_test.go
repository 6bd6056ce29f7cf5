package usecases

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/infrastructure/persistence/testdb"
	"github.com/eventora/eventora/internal/infrastructure/repository"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/services/markdown"
)

var concertStart = time.Date(2026, 12, 31, 21, 0, 0, 0, time.UTC)

type catalogHarness struct {
	users       *repository.UserRepository
	events      *repository.EventRepository
	ticketTypes *repository.TicketTypeRepository
	categories  *repository.CategoryRepository
	tickets     *repository.TicketRepository
	txMgr       *db.TransactionManager
	renderer    markdown.Renderer
	log         logger.Interface
	issued      int
}

func newCatalogHarness(t *testing.T) *catalogHarness {
	gdb := testdb.New(t)
	return &catalogHarness{
		users:       repository.NewUserRepository(gdb),
		events:      repository.NewEventRepository(gdb),
		ticketTypes: repository.NewTicketTypeRepository(gdb),
		categories:  repository.NewCategoryRepository(gdb),
		tickets:     repository.NewTicketRepository(gdb),
		txMgr:       db.NewTransactionManager(gdb),
		renderer:    markdown.NewRenderer(),
		log:         logger.NewNop(),
	}
}

func (h *catalogHarness) seedUser(t *testing.T, externalID string, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.NewUser(externalID, user.Profile{
		Email:     externalID + "@example.com",
		FirstName: "Org",
		LastName:  externalID,
	})
	require.NoError(t, err)
	require.NoError(t, u.ChangeRole(role))
	require.NoError(t, h.users.Create(context.Background(), u))
	return u
}

func (h *catalogHarness) seedCategory(t *testing.T, slug string) *category.Category {
	t.Helper()
	c, err := category.NewCategory("Category "+slug, slug, "", "", "", 0)
	require.NoError(t, err)
	require.NoError(t, h.categories.Upsert(context.Background(), c))
	list, err := h.categories.List(context.Background())
	require.NoError(t, err)
	for _, stored := range list {
		if stored.Slug() == slug {
			return stored
		}
	}
	t.Fatalf("category %s not stored", slug)
	return nil
}

func (h *catalogHarness) createEvents() *CreateEventUseCase {
	return NewCreateEventUseCase(h.events, h.ticketTypes, h.categories, h.renderer, h.txMgr, h.log)
}

func (h *catalogHarness) reviews() *ReviewEventUseCase {
	return NewReviewEventUseCase(h.events, h.txMgr, h.log)
}

// publish creates an event through the organizer flow and approves it.
func (h *catalogHarness) publish(t *testing.T, organizer, admin *user.User, input EventInput, types ...TicketTypeInput) uint {
	t.Helper()
	created, err := h.createEvents().Execute(context.Background(), CreateEventCommand{
		OrganizerID:   organizer.ID(),
		OrganizerRole: organizer.Role(),
		Event:         input,
		TicketTypes:   types,
	})
	require.NoError(t, err)
	_, err = h.reviews().Execute(context.Background(), ReviewEventCommand{
		EventID:      created.EventID,
		ReviewerID:   admin.ID(),
		ReviewerRole: admin.Role(),
		Decision:     "approve",
	})
	require.NoError(t, err)
	return created.EventID
}

func eventInput(title string, start time.Time) EventInput {
	return EventInput{
		Title:        title,
		Description:  "A night of **live** music.",
		LocationName: "Harbour Hall",
		Address:      "1 Quay Street",
		StartDate:    start,
		EndDate:      start.Add(3 * time.Hour),
		Timezone:     "UTC",
	}
}

func ticketInput(name string, price int64, total int) TicketTypeInput {
	return TicketTypeInput{Name: name, Price: price, Currency: "EUR", TotalQuantity: total}
}

// issue stores count tickets of the ticket type for holder, bypassing the
// order ledger.
func (h *catalogHarness) issue(t *testing.T, ticketTypeID, eventID, holderID uint, count int) []*ticket.Ticket {
	t.Helper()
	issued := make([]*ticket.Ticket, 0, count)
	for i := 0; i < count; i++ {
		h.issued++
		tk, err := ticket.NewTicket(1, eventID, ticketTypeID, holderID,
			"TKT-"+strconv.Itoa(h.issued), "qr-"+strconv.Itoa(h.issued), concertStart.AddDate(0, -1, 0))
		require.NoError(t, err)
		issued = append(issued, tk)
	}
	require.NoError(t, h.tickets.CreateBatch(context.Background(), issued))
	return issued
}
