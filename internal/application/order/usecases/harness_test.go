package usecases

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eventora/eventora/internal/application/order/dto"
	"github.com/eventora/eventora/internal/application/order/paymentgateway"
	"github.com/eventora/eventora/internal/domain/event"
	eventvo "github.com/eventora/eventora/internal/domain/event/valueobjects"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/domain/user"
	uservo "github.com/eventora/eventora/internal/domain/user/valueobjects"
	"github.com/eventora/eventora/internal/infrastructure/persistence/testdb"
	"github.com/eventora/eventora/internal/infrastructure/repository"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
)

type recordingRecorder struct {
	mu         sync.Mutex
	orders     map[string]int
	issued     int
	released   int
	rejections map[string]int
}

func newRecordingRecorder() *recordingRecorder {
	return &recordingRecorder{orders: map[string]int{}, rejections: map[string]int{}}
}

func (r *recordingRecorder) OrderCreated(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[kind]++
}

func (r *recordingRecorder) TicketsIssued(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issued += count
}

func (r *recordingRecorder) ReservationsReleased(units int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released += units
}

func (r *recordingRecorder) PurchaseRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejections[reason]++
}

func (r *recordingRecorder) ObserveTransaction(string, time.Duration) {}

type recordingSender struct {
	sent chan dto.ConfirmationMessage
}

func newRecordingSender() *recordingSender {
	return &recordingSender{sent: make(chan dto.ConfirmationMessage, 16)}
}

func (s *recordingSender) SendOrderConfirmation(_ context.Context, msg dto.ConfirmationMessage) error {
	s.sent <- msg
	return nil
}

type mockGateway struct {
	VerifyPaymentFunc func(ctx context.Context, req paymentgateway.VerifyPaymentRequest) (*paymentgateway.Verification, error)
}

func (m *mockGateway) VerifyPayment(ctx context.Context, req paymentgateway.VerifyPaymentRequest) (*paymentgateway.Verification, error) {
	if m.VerifyPaymentFunc != nil {
		return m.VerifyPaymentFunc(ctx, req)
	}
	return &paymentgateway.Verification{Verified: true, Reference: req.Reference}, nil
}

// failingReserveRepo lets a test make the capacity increment fail after the
// order and tickets were written, to observe the rollback.
type failingReserveRepo struct {
	*repository.TicketTypeRepository
	reserveErr error
}

func (r *failingReserveRepo) Reserve(ctx context.Context, id uint, quantity int) error {
	if r.reserveErr != nil {
		return r.reserveErr
	}
	return r.TicketTypeRepository.Reserve(ctx, id, quantity)
}

type ledgerHarness struct {
	users       *repository.UserRepository
	events      *repository.EventRepository
	ticketTypes *repository.TicketTypeRepository
	orders      *repository.OrderRepository
	tickets     *repository.TicketRepository
	txMgr       *db.TransactionManager
	codes       ticket.CodeGenerator
	recorder    *recordingRecorder
	sender      *recordingSender
	log         logger.Interface
}

func newLedgerHarness(t *testing.T) *ledgerHarness {
	gdb := testdb.New(t)
	return &ledgerHarness{
		users:       repository.NewUserRepository(gdb),
		events:      repository.NewEventRepository(gdb),
		ticketTypes: repository.NewTicketTypeRepository(gdb),
		orders:      repository.NewOrderRepository(gdb),
		tickets:     repository.NewTicketRepository(gdb),
		txMgr:       db.NewTransactionManager(gdb),
		codes:       ticket.NewDefaultCodeGenerator(),
		recorder:    newRecordingRecorder(),
		sender:      newRecordingSender(),
		log:         logger.NewNop(),
	}
}

func (h *ledgerHarness) seedUser(t *testing.T, externalID string) *user.User {
	t.Helper()
	u, err := user.NewUser(externalID, user.Profile{
		Email:     externalID + "@example.com",
		FirstName: "Buyer",
		LastName:  externalID,
	})
	require.NoError(t, err)
	require.NoError(t, h.users.Create(context.Background(), u))
	return u
}

func (h *ledgerHarness) suspend(t *testing.T, u *user.User) {
	t.Helper()
	require.NoError(t, u.ChangeStatus(uservo.StatusSuspended))
	require.NoError(t, h.users.Update(context.Background(), u))
}

func (h *ledgerHarness) seedEvent(t *testing.T, organizerID uint, slug string, approved bool) *event.Event {
	t.Helper()
	start := time.Date(2026, 12, 5, 19, 0, 0, 0, time.UTC)
	e, err := event.NewEvent(organizerID, slug, event.Details{
		Title:         "Event " + slug,
		StartDate:     start,
		EndDate:       start.Add(2 * time.Hour),
		TotalCapacity: 100,
	})
	require.NoError(t, err)
	if approved {
		require.NoError(t, e.Review(eventvo.DecisionApprove, organizerID, "", time.Now()))
	}
	require.NoError(t, h.events.Create(context.Background(), e))
	return e
}

func (h *ledgerHarness) seedTicketType(t *testing.T, eventID uint, price int64, total int) *event.TicketType {
	t.Helper()
	return h.seedTicketTypeWith(t, eventID, event.TicketTypeParams{
		Name:          fmt.Sprintf("Tier %d", price),
		Price:         price,
		Currency:      "USD",
		TotalQuantity: total,
	})
}

func (h *ledgerHarness) seedTicketTypeWith(t *testing.T, eventID uint, params event.TicketTypeParams) *event.TicketType {
	t.Helper()
	tt, err := event.NewTicketType(eventID, params)
	require.NoError(t, err)
	require.NoError(t, h.ticketTypes.Create(context.Background(), tt))
	return tt
}

func (h *ledgerHarness) soldQuantity(t *testing.T, ticketTypeID uint) int {
	t.Helper()
	tt, err := h.ticketTypes.GetByID(context.Background(), ticketTypeID)
	require.NoError(t, err)
	return tt.SoldQuantity()
}

func (h *ledgerHarness) freeOrders() *CreateFreeOrderUseCase {
	return NewCreateFreeOrderUseCase(h.users, h.events, h.ticketTypes, h.orders, h.tickets, h.codes, h.txMgr, h.recorder, h.sender, h.log)
}

func (h *ledgerHarness) paidOrders(now time.Time) *CreatePaidOrderUseCase {
	uc := NewCreatePaidOrderUseCase(h.users, h.events, h.ticketTypes, h.orders, h.txMgr, h.recorder, h.log, 0)
	uc.now = fixedClock(now)
	return uc
}

func (h *ledgerHarness) payments(gateway paymentgateway.PaymentGateway, now time.Time) *CompleteOrderPaymentUseCase {
	uc := NewCompleteOrderPaymentUseCase(h.users, h.events, h.orders, h.tickets, h.codes, gateway, h.txMgr, h.recorder, h.sender, h.log)
	uc.now = fixedClock(now)
	return uc
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}
