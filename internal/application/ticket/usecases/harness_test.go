package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/application/order/paymentgateway"
	orderusecases "github.com/eventora/eventora/internal/application/order/usecases"
	"github.com/eventora/eventora/internal/domain/event"
	eventvo "github.com/eventora/eventora/internal/domain/event/valueobjects"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/infrastructure/persistence/testdb"
	"github.com/eventora/eventora/internal/infrastructure/repository"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
)

type ticketHarness struct {
	users       *repository.UserRepository
	events      *repository.EventRepository
	ticketTypes *repository.TicketTypeRepository
	orders      *repository.OrderRepository
	tickets     *repository.TicketRepository
	txMgr       *db.TransactionManager
	log         logger.Interface
}

func newTicketHarness(t *testing.T) *ticketHarness {
	gdb := testdb.New(t)
	return &ticketHarness{
		users:       repository.NewUserRepository(gdb),
		events:      repository.NewEventRepository(gdb),
		ticketTypes: repository.NewTicketTypeRepository(gdb),
		orders:      repository.NewOrderRepository(gdb),
		tickets:     repository.NewTicketRepository(gdb),
		txMgr:       db.NewTransactionManager(gdb),
		log:         logger.NewNop(),
	}
}

func (h *ticketHarness) seedUser(t *testing.T, externalID string) *user.User {
	t.Helper()
	u, err := user.NewUser(externalID, user.Profile{
		Email:     externalID + "@example.com",
		FirstName: "Guest",
		LastName:  externalID,
	})
	require.NoError(t, err)
	require.NoError(t, h.users.Create(context.Background(), u))
	return u
}

func (h *ticketHarness) seedEvent(t *testing.T, organizerID uint, slug string) *event.Event {
	t.Helper()
	start := time.Date(2026, 11, 20, 18, 0, 0, 0, time.UTC)
	e, err := event.NewEvent(organizerID, slug, event.Details{
		Title:     "Event " + slug,
		StartDate: start,
		EndDate:   start.Add(3 * time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, e.Review(eventvo.DecisionApprove, organizerID, "", time.Now()))
	require.NoError(t, h.events.Create(context.Background(), e))
	return e
}

func (h *ticketHarness) seedTicketType(t *testing.T, eventID uint, name string, price int64) *event.TicketType {
	t.Helper()
	tt, err := event.NewTicketType(eventID, event.TicketTypeParams{
		Name:          name,
		Price:         price,
		Currency:      "EUR",
		TotalQuantity: 50,
	})
	require.NoError(t, err)
	require.NoError(t, h.ticketTypes.Create(context.Background(), tt))
	return tt
}

// register issues free tickets through the order ledger.
func (h *ticketHarness) register(t *testing.T, buyer *user.User, tt *event.TicketType, quantity int) []*ticket.Ticket {
	t.Helper()
	uc := orderusecases.NewCreateFreeOrderUseCase(
		h.users, h.events, h.ticketTypes, h.orders, h.tickets,
		ticket.NewDefaultCodeGenerator(), h.txMgr, orderusecases.NopRecorder(), nil, h.log,
	)
	result, err := uc.Execute(context.Background(), orderusecases.CreateFreeOrderCommand{
		UserID:       buyer.ID(),
		EventID:      tt.EventID(),
		TicketTypeID: tt.ID(),
		Quantity:     quantity,
	})
	require.NoError(t, err)
	return h.orderTickets(t, result.OrderID)
}

// buy runs both phases of a paid purchase.
func (h *ticketHarness) buy(t *testing.T, buyer *user.User, tt *event.TicketType, quantity int) []*ticket.Ticket {
	t.Helper()
	ctx := context.Background()
	reserve := orderusecases.NewCreatePaidOrderUseCase(
		h.users, h.events, h.ticketTypes, h.orders, h.txMgr, orderusecases.NopRecorder(), h.log, 0,
	)
	reserved, err := reserve.Execute(ctx, orderusecases.CreatePaidOrderCommand{
		UserID:  buyer.ID(),
		EventID: tt.EventID(),
		Items:   []orderusecases.ItemInput{{TicketTypeID: tt.ID(), Quantity: quantity}},
	})
	require.NoError(t, err)

	pay := orderusecases.NewCompleteOrderPaymentUseCase(
		h.users, h.events, h.orders, h.tickets, ticket.NewDefaultCodeGenerator(),
		paymentgateway.NewSimulatedGateway(), h.txMgr, orderusecases.NopRecorder(), nil, h.log,
	)
	_, err = pay.Execute(ctx, orderusecases.CompleteOrderPaymentCommand{
		UserID:           buyer.ID(),
		OrderID:          reserved.OrderID,
		PaymentReference: "pi_test",
	})
	require.NoError(t, err)
	return h.orderTickets(t, reserved.OrderID)
}

func (h *ticketHarness) orderTickets(t *testing.T, orderID uint) []*ticket.Ticket {
	t.Helper()
	tickets, err := h.tickets.ListByOrder(context.Background(), orderID)
	require.NoError(t, err)
	return tickets
}
