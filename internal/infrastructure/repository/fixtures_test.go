package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/eventora/eventora/internal/domain/event"
	eventvo "github.com/eventora/eventora/internal/domain/event/valueobjects"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/infrastructure/persistence/testdb"
)

type fixtures struct {
	db          *gorm.DB
	users       *UserRepository
	events      *EventRepository
	ticketTypes *TicketTypeRepository
	orders      *OrderRepository
	tickets     *TicketRepository
	waitlist    *WaitlistRepository
	categories  *CategoryRepository
}

func newFixtures(t *testing.T) *fixtures {
	db := testdb.New(t)
	return &fixtures{
		db:          db,
		users:       NewUserRepository(db),
		events:      NewEventRepository(db),
		ticketTypes: NewTicketTypeRepository(db),
		orders:      NewOrderRepository(db),
		tickets:     NewTicketRepository(db),
		waitlist:    NewWaitlistRepository(db),
		categories:  NewCategoryRepository(db),
	}
}

func (f *fixtures) createUser(t *testing.T, externalID string) *user.User {
	t.Helper()
	u, err := user.NewUser(externalID, user.Profile{
		Email:     fmt.Sprintf("%s@example.com", externalID),
		FirstName: "Test",
		LastName:  externalID,
	})
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func testDetails(title string, start time.Time) event.Details {
	return event.Details{
		Title:         title,
		Description:   "An evening of " + title,
		LocationName:  "Main Hall",
		StartDate:     start,
		EndDate:       start.Add(3 * time.Hour),
		TotalCapacity: 100,
		Tags:          []string{"music"},
	}
}

func (f *fixtures) createEvent(t *testing.T, organizerID uint, slug string, details event.Details, approve bool) *event.Event {
	t.Helper()
	e, err := event.NewEvent(organizerID, slug, details)
	require.NoError(t, err)
	if approve {
		require.NoError(t, e.Review(eventvo.DecisionApprove, 999, "", time.Now()))
	}
	require.NoError(t, f.events.Create(context.Background(), e))
	return e
}

func (f *fixtures) createTicketType(t *testing.T, eventID uint, name string, price int64, total int) *event.TicketType {
	t.Helper()
	tt, err := event.NewTicketType(eventID, event.TicketTypeParams{
		Name:          name,
		Price:         price,
		Currency:      "USD",
		TotalQuantity: total,
	})
	require.NoError(t, err)
	require.NoError(t, f.ticketTypes.Create(context.Background(), tt))
	return tt
}
