package usecases

import (
	"context"
	"strings"

	"github.com/eventora/eventora/internal/application/ticket/dto"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/biztime"
	"github.com/eventora/eventora/internal/shared/db"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
	"github.com/eventora/eventora/internal/shared/logger"
)

type CheckInTicketCommand struct {
	EventID   uint
	QRSecret  string
	StaffID   uint
	StaffRole authorization.UserRole
}

// CheckInTicketUseCase admits a ticket holder at the door by the secret
// scanned from the ticket's QR code.
type CheckInTicketUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	ticketRepo     ticket.Repository
	txMgr          *db.TransactionManager
	logger         logger.Interface
	now            biztime.Clock
}

func NewCheckInTicketUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	ticketRepo ticket.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *CheckInTicketUseCase {
	return &CheckInTicketUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		ticketRepo:     ticketRepo,
		txMgr:          txMgr,
		logger:         logger,
		now:            biztime.NowUTC,
	}
}

func (uc *CheckInTicketUseCase) Execute(ctx context.Context, cmd CheckInTicketCommand) (*dto.CheckInResultDTO, error) {
	secret := strings.TrimSpace(cmd.QRSecret)
	if secret == "" {
		return nil, apperrors.NewValidationError("qr secret is required")
	}

	ev, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return nil, toAppError(err, "get event")
	}
	if !authorization.CanManageEvent(cmd.StaffID, cmd.StaffRole, ev.OrganizerID()) {
		return nil, toAppError(errNotEventStaff, "check in ticket")
	}

	var checkedIn *ticket.Ticket
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByQRSecret(txCtx, secret)
		if err != nil {
			return err
		}
		if t.EventID() != ev.ID() {
			return ticket.ErrTicketWrongEvent
		}
		if err := t.CheckIn(cmd.StaffID, uc.now()); err != nil {
			return err
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		checkedIn = t
		return nil
	})
	if err != nil {
		uc.logger.Warnw("ticket check-in refused",
			"error", err,
			"event_id", ev.ID(),
			"staff_id", cmd.StaffID,
		)
		return nil, toAppError(err, "check in ticket")
	}

	tt, err := uc.ticketTypeRepo.GetByID(ctx, checkedIn.TicketTypeID())
	if err != nil {
		uc.logger.Warnw("failed to load ticket type after check-in", "error", err, "ticket_id", checkedIn.ID())
	}

	uc.logger.Infow("ticket checked in",
		"ticket_id", checkedIn.ID(),
		"event_id", ev.ID(),
		"staff_id", cmd.StaffID,
	)
	return &dto.CheckInResultDTO{
		Ticket:      dto.ToTicketDTO(checkedIn, tt),
		AttendeeID:  checkedIn.UserID(),
		CheckedInAt: *checkedIn.CheckedInAt(),
	}, nil
}
