package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/eventora/eventora/internal/application/order/dto"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/biztime"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
)

type ItemInput struct {
	TicketTypeID uint
	Quantity     int
}

type CreatePaidOrderCommand struct {
	UserID  uint
	EventID uint
	Items   []ItemInput
}

// CreatePaidOrderUseCase is phase one of a paid checkout: it prices the
// cart, stores a pending order and holds capacity until the order expires.
type CreatePaidOrderUseCase struct {
	userRepo       user.Repository
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	orderRepo      order.Repository
	txMgr          *db.TransactionManager
	recorder       LedgerRecorder
	logger         logger.Interface
	hold           time.Duration
	now            biztime.Clock
}

func NewCreatePaidOrderUseCase(
	userRepo user.Repository,
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	orderRepo order.Repository,
	txMgr *db.TransactionManager,
	recorder LedgerRecorder,
	logger logger.Interface,
	hold time.Duration,
) *CreatePaidOrderUseCase {
	if hold <= 0 {
		hold = order.DefaultPaymentHold
	}
	return &CreatePaidOrderUseCase{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		orderRepo:      orderRepo,
		txMgr:          txMgr,
		recorder:       recorder,
		logger:         logger,
		hold:           hold,
		now:            biztime.NowUTC,
	}
}

func (uc *CreatePaidOrderUseCase) Execute(ctx context.Context, cmd CreatePaidOrderCommand) (*dto.PaidOrderResultDTO, error) {
	items, err := mergeItems(cmd.Items)
	if err != nil {
		return nil, toAppError(err)
	}

	buyer, err := resolveBuyer(ctx, uc.userRepo, cmd.UserID)
	if err != nil {
		return nil, toAppError(err)
	}
	ev, err := loadOnSaleEvent(ctx, uc.eventRepo, cmd.EventID)
	if err != nil {
		return nil, toAppError(err)
	}

	var created *order.Order
	started := time.Now()
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.LockByID(txCtx, buyer.ID()); err != nil {
			return err
		}
		registered, err := uc.orderRepo.HasCompletedForEvent(txCtx, buyer.ID(), ev.ID())
		if err != nil {
			return err
		}
		if registered {
			return order.ErrAlreadyRegistered
		}

		now := uc.now()
		priced, currency, err := uc.priceItems(txCtx, ev.ID(), items, now)
		if err != nil {
			return err
		}

		created, err = order.NewPaidOrder(buyer.ID(), ev.ID(), priced, currency, now, uc.hold)
		if err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, created); err != nil {
			return err
		}

		for _, item := range priced {
			if err := uc.ticketTypeRepo.Reserve(txCtx, item.TicketTypeID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	uc.recorder.ObserveTransaction("create_paid_order", time.Since(started))
	if err != nil {
		uc.recorder.PurchaseRejected(rejectionReason(err))
		uc.logger.Warnw("paid order rejected",
			"error", err,
			"user_id", buyer.ID(),
			"event_id", ev.ID(),
		)
		return nil, ledgerFailure(err, "create paid order")
	}

	uc.recorder.OrderCreated(OrderKindPaid)
	uc.logger.Infow("paid order reserved",
		"order_id", created.ID(),
		"user_id", buyer.ID(),
		"event_id", ev.ID(),
		"total", created.Total().String(),
		"expires_at", created.ExpiresAt(),
	)

	return &dto.PaidOrderResultDTO{
		OrderID:      created.ID(),
		TotalAmount:  created.Total().AmountInCents(),
		Currency:     created.Total().Currency(),
		TotalDisplay: created.Total().String(),
		ExpiresAt:    *created.ExpiresAt(),
	}, nil
}

// priceItems resolves every line item against the event's ticket types and
// returns them with unit prices. All items must share one currency and
// pass their ticket type's purchase rules.
func (uc *CreatePaidOrderUseCase) priceItems(ctx context.Context, eventID uint, items []ItemInput, now time.Time) ([]order.Item, string, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.TicketTypeID)
	}
	ticketTypes, err := uc.ticketTypeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, "", err
	}
	byID := make(map[uint]*event.TicketType, len(ticketTypes))
	for _, tt := range ticketTypes {
		byID[tt.ID()] = tt
	}

	priced := make([]order.Item, 0, len(items))
	currency := ""
	for _, item := range items {
		tt, ok := byID[item.TicketTypeID]
		if !ok || !tt.BelongsTo(eventID) {
			return nil, "", fmt.Errorf("%w: ticket type %d", order.ErrInvalidTicketType, item.TicketTypeID)
		}
		if err := checkPurchasable(tt, item.Quantity, now); err != nil {
			return nil, "", err
		}
		if currency == "" {
			currency = tt.Currency()
		} else if currency != tt.Currency() {
			return nil, "", fmt.Errorf("%w: mixed currencies %s and %s", order.ErrInvalidTicketType, currency, tt.Currency())
		}
		priced = append(priced, order.Item{
			TicketTypeID: tt.ID(),
			Quantity:     item.Quantity,
			UnitPrice:    tt.Price(),
		})
	}
	return priced, currency, nil
}

// mergeItems validates quantities and folds repeated ticket types into one
// line, ordered by ticket type so reservations lock rows in a stable order.
func mergeItems(items []ItemInput) ([]ItemInput, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", order.ErrInvalidQuantity)
	}
	totals := make(map[uint]int, len(items))
	for _, item := range items {
		if item.TicketTypeID == 0 {
			return nil, order.ErrInvalidTicketType
		}
		if item.Quantity < 1 {
			return nil, order.ErrInvalidQuantity
		}
		totals[item.TicketTypeID] += item.Quantity
	}

	merged := make([]ItemInput, 0, len(totals))
	for id, qty := range totals {
		merged = append(merged, ItemInput{TicketTypeID: id, Quantity: qty})
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].TicketTypeID < merged[j].TicketTypeID
	})
	return merged, nil
}

func toOrderItems(items []ItemInput) []order.Item {
	out := make([]order.Item, 0, len(items))
	for _, item := range items {
		out = append(out, order.Item{TicketTypeID: item.TicketTypeID, Quantity: item.Quantity})
	}
	return out
}
