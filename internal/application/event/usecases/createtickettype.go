package usecases

import (
	"context"

	"github.com/eventora/eventora/internal/application/event/dto"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/logger"
)

type CreateTicketTypeCommand struct {
	EventID    uint
	UserID     uint
	UserRole   authorization.UserRole
	TicketType TicketTypeInput
}

type CreateTicketTypeUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	logger         logger.Interface
}

func NewCreateTicketTypeUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	logger logger.Interface,
) *CreateTicketTypeUseCase {
	return &CreateTicketTypeUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		logger:         logger,
	}
}

func (uc *CreateTicketTypeUseCase) Execute(ctx context.Context, cmd CreateTicketTypeCommand) (*dto.TicketTypeDTO, error) {
	e, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return nil, toAppError(err, "create ticket type")
	}
	if !authorization.CanManageEvent(cmd.UserID, cmd.UserRole, e.OrganizerID()) {
		return nil, toAppError(errNotEventOwner, "create ticket type")
	}

	tt, err := event.NewTicketType(e.ID(), cmd.TicketType.params())
	if err != nil {
		return nil, invalidInput(err)
	}
	if err := uc.ticketTypeRepo.Create(ctx, tt); err != nil {
		uc.logger.Errorw("failed to create ticket type", "error", err, "event_id", e.ID())
		return nil, toAppError(err, "create ticket type")
	}

	uc.logger.Infow("ticket type created",
		"ticket_type_id", tt.ID(),
		"event_id", e.ID(),
		"price", tt.Price(),
		"total_quantity", tt.TotalQuantity(),
	)
	return dto.ToTicketTypeDTO(tt), nil
}
