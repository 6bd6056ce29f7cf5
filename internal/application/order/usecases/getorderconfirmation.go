package usecases

import (
	"context"

	"github.com/eventora/eventora/internal/application/order/dto"
	ticketdto "github.com/eventora/eventora/internal/application/ticket/dto"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/shared/logger"
)

type GetOrderConfirmationQuery struct {
	UserID  uint
	EventID uint
}

// GetOrderConfirmationUseCase returns the caller's latest completed order
// for an event together with the tickets it issued.
type GetOrderConfirmationUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	orderRepo      order.Repository
	ticketRepo     ticket.Repository
	logger         logger.Interface
}

func NewGetOrderConfirmationUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	orderRepo order.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetOrderConfirmationUseCase {
	return &GetOrderConfirmationUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		orderRepo:      orderRepo,
		ticketRepo:     ticketRepo,
		logger:         logger,
	}
}

func (uc *GetOrderConfirmationUseCase) Execute(ctx context.Context, query GetOrderConfirmationQuery) (*dto.OrderConfirmationDTO, error) {
	o, err := uc.orderRepo.GetLatestCompletedForEvent(ctx, query.UserID, query.EventID)
	if err != nil {
		return nil, ledgerFailure(err, "get order confirmation")
	}
	ev, err := uc.eventRepo.GetByID(ctx, o.EventID())
	if err != nil {
		return nil, ledgerFailure(err, "get order confirmation")
	}
	tickets, err := uc.ticketRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		uc.logger.Errorw("failed to list order tickets", "error", err, "order_id", o.ID())
		return nil, ledgerFailure(err, "list order tickets")
	}
	ticketTypes, err := uc.ticketTypeRepo.ListByEvent(ctx, ev.ID(), false)
	if err != nil {
		return nil, ledgerFailure(err, "list ticket types")
	}
	byID := make(map[uint]*event.TicketType, len(ticketTypes))
	for _, tt := range ticketTypes {
		byID[tt.ID()] = tt
	}

	ticketDTOs := make([]ticketdto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		ticketDTOs = append(ticketDTOs, ticketdto.ToTicketDTO(t, byID[t.TicketTypeID()]))
	}

	return &dto.OrderConfirmationDTO{
		Order:   dto.ToOrderDTO(o),
		Event:   ticketdto.ToEventSummaryDTO(ev),
		Tickets: ticketDTOs,
	}, nil
}
