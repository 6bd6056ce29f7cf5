package usecases

import (
	"context"

	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
)

type VoidTicketCommand struct {
	TicketID  uint
	StaffID   uint
	StaffRole authorization.UserRole
}

// VoidTicketUseCase invalidates a ticket. Capacity is not returned.
type VoidTicketUseCase struct {
	eventRepo  event.Repository
	ticketRepo ticket.Repository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewVoidTicketUseCase(
	eventRepo event.Repository,
	ticketRepo ticket.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *VoidTicketUseCase {
	return &VoidTicketUseCase{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *VoidTicketUseCase) Execute(ctx context.Context, cmd VoidTicketCommand) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		ev, err := uc.eventRepo.GetByID(txCtx, t.EventID())
		if err != nil {
			return err
		}
		if !authorization.CanManageEvent(cmd.StaffID, cmd.StaffRole, ev.OrganizerID()) {
			return errNotEventStaff
		}
		if err := t.Void(); err != nil {
			return err
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Warnw("ticket void refused",
			"error", err,
			"ticket_id", cmd.TicketID,
			"staff_id", cmd.StaffID,
		)
		return toAppError(err, "void ticket")
	}

	uc.logger.Infow("ticket voided", "ticket_id", cmd.TicketID, "staff_id", cmd.StaffID)
	return nil
}
