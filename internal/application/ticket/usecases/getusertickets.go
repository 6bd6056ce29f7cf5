package usecases

import (
	"context"
	"fmt"

	"github.com/eventora/eventora/internal/application/ticket/dto"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/shared/logger"
)

type GetUserTicketsQuery struct {
	UserID uint
}

// GetUserTicketsUseCase lists every ticket the caller holds, grouped by event.
type GetUserTicketsUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	ticketRepo     ticket.Repository
	logger         logger.Interface
}

func NewGetUserTicketsUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetUserTicketsUseCase {
	return &GetUserTicketsUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		ticketRepo:     ticketRepo,
		logger:         logger,
	}
}

// Execute returns groups in the order their event first appears in the
// newest-first ticket list. Tickets of every status are included.
func (uc *GetUserTicketsUseCase) Execute(ctx context.Context, query GetUserTicketsQuery) ([]dto.EventTicketsDTO, error) {
	if query.UserID == 0 {
		return []dto.EventTicketsDTO{}, nil
	}

	tickets, err := uc.ticketRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list user tickets", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list user tickets: %w", err)
	}
	if len(tickets) == 0 {
		return []dto.EventTicketsDTO{}, nil
	}

	var eventIDs, ticketTypeIDs []uint
	groups := make(map[uint][]*ticket.Ticket)
	for _, t := range tickets {
		if _, ok := groups[t.EventID()]; !ok {
			eventIDs = append(eventIDs, t.EventID())
		}
		groups[t.EventID()] = append(groups[t.EventID()], t)
		ticketTypeIDs = append(ticketTypeIDs, t.TicketTypeID())
	}

	events, err := uc.eventRepo.GetByIDs(ctx, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket events: %w", err)
	}
	eventsByID := make(map[uint]*event.Event, len(events))
	for _, e := range events {
		eventsByID[e.ID()] = e
	}

	ticketTypes, err := uc.ticketTypeRepo.GetByIDs(ctx, ticketTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket types: %w", err)
	}
	typesByID := make(map[uint]*event.TicketType, len(ticketTypes))
	for _, tt := range ticketTypes {
		typesByID[tt.ID()] = tt
	}

	result := make([]dto.EventTicketsDTO, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		group := groups[eventID]
		ticketDTOs := make([]dto.TicketDTO, 0, len(group))
		for _, t := range group {
			ticketDTOs = append(ticketDTOs, dto.ToTicketDTO(t, typesByID[t.TicketTypeID()]))
		}
		result = append(result, dto.EventTicketsDTO{
			Event:   dto.ToEventSummaryDTO(eventsByID[eventID]),
			Tickets: ticketDTOs,
		})
	}
	return result, nil
}
