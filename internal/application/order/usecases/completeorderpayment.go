package usecases

import (
	"context"
	"time"

	"github.com/eventora/eventora/internal/application/order/dto"
	"github.com/eventora/eventora/internal/application/order/paymentgateway"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/biztime"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
)

type CompleteOrderPaymentCommand struct {
	UserID           uint
	OrderID          uint
	PaymentReference string
	// Items is optional. When present it must equal the reserved items.
	Items []ItemInput
}

// CompleteOrderPaymentUseCase is phase two of a paid checkout: it confirms
// payment for a pending order inside its hold window and issues tickets
// from the stored line items.
type CompleteOrderPaymentUseCase struct {
	userRepo   user.Repository
	eventRepo  event.Repository
	orderRepo  order.Repository
	ticketRepo ticket.Repository
	codes      ticket.CodeGenerator
	gateway    paymentgateway.PaymentGateway
	txMgr      *db.TransactionManager
	recorder   LedgerRecorder
	sender     ConfirmationSender
	logger     logger.Interface
	now        biztime.Clock
}

func NewCompleteOrderPaymentUseCase(
	userRepo user.Repository,
	eventRepo event.Repository,
	orderRepo order.Repository,
	ticketRepo ticket.Repository,
	codes ticket.CodeGenerator,
	gateway paymentgateway.PaymentGateway,
	txMgr *db.TransactionManager,
	recorder LedgerRecorder,
	sender ConfirmationSender,
	logger logger.Interface,
) *CompleteOrderPaymentUseCase {
	return &CompleteOrderPaymentUseCase{
		userRepo:   userRepo,
		eventRepo:  eventRepo,
		orderRepo:  orderRepo,
		ticketRepo: ticketRepo,
		codes:      codes,
		gateway:    gateway,
		txMgr:      txMgr,
		recorder:   recorder,
		sender:     sender,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *CompleteOrderPaymentUseCase) Execute(ctx context.Context, cmd CompleteOrderPaymentCommand) (*dto.PaymentResultDTO, error) {
	buyer, err := resolveBuyer(ctx, uc.userRepo, cmd.UserID)
	if err != nil {
		return nil, toAppError(err)
	}

	var clientItems []ItemInput
	if len(cmd.Items) > 0 {
		if clientItems, err = mergeItems(cmd.Items); err != nil {
			return nil, toAppError(err)
		}
	}

	var (
		completed *order.Order
		issued    []*ticket.Ticket
	)
	started := time.Now()
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.LockByID(txCtx, buyer.ID()); err != nil {
			return err
		}

		o, err := uc.orderRepo.GetByID(txCtx, cmd.OrderID)
		if err != nil {
			return err
		}
		// Another buyer's order is reported as missing.
		if !o.IsOwnedBy(buyer.ID()) {
			return order.ErrOrderNotFound
		}
		if !o.Status().IsPending() {
			return order.ErrOrderNotPending
		}
		now := uc.now()
		if o.IsExpiredAt(now) {
			return order.ErrOrderExpired
		}
		if clientItems != nil && !o.MatchesItems(toOrderItems(clientItems)) {
			return order.ErrItemsMismatch
		}

		registered, err := uc.orderRepo.HasCompletedForEvent(txCtx, buyer.ID(), o.EventID())
		if err != nil {
			return err
		}
		if registered {
			return order.ErrAlreadyRegistered
		}

		verification, err := uc.gateway.VerifyPayment(txCtx, paymentgateway.VerifyPaymentRequest{
			OrderID:   o.ID(),
			Reference: cmd.PaymentReference,
			Amount:    o.Total().AmountInCents(),
			Currency:  o.Total().Currency(),
		})
		if err != nil {
			return err
		}
		if !verification.Verified {
			return order.ErrPaymentNotVerified
		}

		if err := o.CompletePayment(verification.Reference, now); err != nil {
			return err
		}
		if err := uc.orderRepo.MarkCompleted(txCtx, o); err != nil {
			return err
		}

		issued, err = issueTickets(txCtx, uc.ticketRepo, uc.codes, o, now)
		if err != nil {
			return err
		}
		completed = o
		return nil
	})
	uc.recorder.ObserveTransaction("complete_order_payment", time.Since(started))
	if err != nil {
		uc.recorder.PurchaseRejected(rejectionReason(err))
		uc.logger.Warnw("order payment rejected",
			"error", err,
			"user_id", buyer.ID(),
			"order_id", cmd.OrderID,
		)
		return nil, ledgerFailure(err, "complete order payment")
	}

	uc.recorder.TicketsIssued(len(issued))
	uc.logger.Infow("order payment completed",
		"order_id", completed.ID(),
		"user_id", buyer.ID(),
		"event_id", completed.EventID(),
		"tickets", len(issued),
	)

	if ev, err := uc.eventRepo.GetByID(ctx, completed.EventID()); err == nil {
		sendConfirmation(uc.sender, uc.logger, buyer, ev, completed, issued)
	} else {
		uc.logger.Warnw("skipping order confirmation", "error", err, "order_id", completed.ID())
	}

	return &dto.PaymentResultDTO{
		OrderID:        completed.ID(),
		TicketsCreated: len(issued),
	}, nil
}
