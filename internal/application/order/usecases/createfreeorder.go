package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/eventora/eventora/internal/application/order/dto"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/biztime"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
)

type CreateFreeOrderCommand struct {
	UserID       uint
	EventID      uint
	TicketTypeID uint
	Quantity     int
}

// CreateFreeOrderUseCase registers a buyer for a zero-price ticket type.
// The order, its tickets and the capacity increment commit together.
type CreateFreeOrderUseCase struct {
	userRepo       user.Repository
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	orderRepo      order.Repository
	ticketRepo     ticket.Repository
	codes          ticket.CodeGenerator
	txMgr          *db.TransactionManager
	recorder       LedgerRecorder
	sender         ConfirmationSender
	logger         logger.Interface
	now            biztime.Clock
}

func NewCreateFreeOrderUseCase(
	userRepo user.Repository,
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	orderRepo order.Repository,
	ticketRepo ticket.Repository,
	codes ticket.CodeGenerator,
	txMgr *db.TransactionManager,
	recorder LedgerRecorder,
	sender ConfirmationSender,
	logger logger.Interface,
) *CreateFreeOrderUseCase {
	return &CreateFreeOrderUseCase{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		orderRepo:      orderRepo,
		ticketRepo:     ticketRepo,
		codes:          codes,
		txMgr:          txMgr,
		recorder:       recorder,
		sender:         sender,
		logger:         logger,
		now:            biztime.NowUTC,
	}
}

func (uc *CreateFreeOrderUseCase) Execute(ctx context.Context, cmd CreateFreeOrderCommand) (*dto.FreeOrderResultDTO, error) {
	if cmd.Quantity < 1 {
		return nil, toAppError(order.ErrInvalidQuantity)
	}

	buyer, err := resolveBuyer(ctx, uc.userRepo, cmd.UserID)
	if err != nil {
		return nil, toAppError(err)
	}
	ev, err := loadOnSaleEvent(ctx, uc.eventRepo, cmd.EventID)
	if err != nil {
		return nil, toAppError(err)
	}

	var (
		created *order.Order
		issued  []*ticket.Ticket
	)
	started := time.Now()
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Serializes concurrent purchases by the same buyer so the
		// duplicate check below cannot be raced.
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

		tt, err := uc.ticketTypeRepo.GetByID(txCtx, cmd.TicketTypeID)
		if err != nil {
			if errors.Is(err, event.ErrTicketTypeNotFound) {
				return order.ErrInvalidFreeTicket
			}
			return err
		}
		if !tt.BelongsTo(ev.ID()) || !tt.IsFree() {
			return order.ErrInvalidFreeTicket
		}
		now := uc.now()
		if err := checkPurchasable(tt, cmd.Quantity, now); err != nil {
			return err
		}
		if !tt.HasCapacityFor(cmd.Quantity) {
			return event.ErrInsufficientInventory
		}

		created, err = order.NewFreeOrder(buyer.ID(), ev.ID(), order.Item{
			TicketTypeID: tt.ID(),
			Quantity:     cmd.Quantity,
		}, tt.Currency(), now)
		if err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, created); err != nil {
			return err
		}

		issued, err = issueTickets(txCtx, uc.ticketRepo, uc.codes, created, now)
		if err != nil {
			return err
		}

		// The guarded increment is authoritative; the check above only
		// orders the error precedence.
		return uc.ticketTypeRepo.Reserve(txCtx, tt.ID(), cmd.Quantity)
	})
	uc.recorder.ObserveTransaction("create_free_order", time.Since(started))
	if err != nil {
		uc.recorder.PurchaseRejected(rejectionReason(err))
		uc.logger.Warnw("free order rejected",
			"error", err,
			"user_id", buyer.ID(),
			"event_id", ev.ID(),
			"ticket_type_id", cmd.TicketTypeID,
			"quantity", cmd.Quantity,
		)
		return nil, ledgerFailure(err, "create free order")
	}

	uc.recorder.OrderCreated(OrderKindFree)
	uc.recorder.TicketsIssued(len(issued))
	uc.logger.Infow("free order created",
		"order_id", created.ID(),
		"user_id", buyer.ID(),
		"event_id", ev.ID(),
		"tickets", len(issued),
	)
	sendConfirmation(uc.sender, uc.logger, buyer, ev, created, issued)

	return &dto.FreeOrderResultDTO{
		OrderID:        created.ID(),
		TicketsCreated: len(issued),
	}, nil
}
