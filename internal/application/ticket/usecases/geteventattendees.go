package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventora/eventora/internal/application/ticket/dto"
	"github.com/eventora/eventora/internal/domain/event"
	vo "github.com/eventora/eventora/internal/domain/order/valueobjects"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/logger"
)

type GetEventAttendeesQuery struct {
	EventID  uint
	UserID   uint
	UserRole authorization.UserRole
}

// GetEventAttendeesUseCase aggregates the non-voided tickets of an event per
// holder. Callers other than the organizer or an admin get an empty list.
type GetEventAttendeesUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	ticketRepo     ticket.Repository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewGetEventAttendeesUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetEventAttendeesUseCase {
	return &GetEventAttendeesUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		ticketRepo:     ticketRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *GetEventAttendeesUseCase) Execute(ctx context.Context, query GetEventAttendeesQuery) ([]dto.AttendeeDTO, error) {
	empty := []dto.AttendeeDTO{}

	ev, err := uc.eventRepo.GetByID(ctx, query.EventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return empty, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if !authorization.CanManageEvent(query.UserID, query.UserRole, ev.OrganizerID()) {
		uc.logger.Warnw("attendee list requested by non-organizer",
			"event_id", ev.ID(),
			"user_id", query.UserID,
		)
		return empty, nil
	}

	tickets, err := uc.ticketRepo.ListByEvent(ctx, ev.ID())
	if err != nil {
		uc.logger.Errorw("failed to list event tickets", "error", err, "event_id", ev.ID())
		return nil, fmt.Errorf("failed to list event tickets: %w", err)
	}

	ticketTypes, err := uc.ticketTypeRepo.ListByEvent(ctx, ev.ID(), false)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	typesByID := make(map[uint]*event.TicketType, len(ticketTypes))
	for _, tt := range ticketTypes {
		typesByID[tt.ID()] = tt
	}

	var holderIDs []uint
	byHolder := make(map[uint][]*ticket.Ticket)
	for _, t := range tickets {
		if t.IsVoided() {
			continue
		}
		if _, ok := byHolder[t.UserID()]; !ok {
			holderIDs = append(holderIDs, t.UserID())
		}
		byHolder[t.UserID()] = append(byHolder[t.UserID()], t)
	}
	if len(holderIDs) == 0 {
		return empty, nil
	}

	holders, err := uc.userRepo.GetByIDs(ctx, holderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendees: %w", err)
	}
	usersByID := make(map[uint]*user.User, len(holders))
	for _, u := range holders {
		usersByID[u.ID()] = u
	}

	attendees := make([]dto.AttendeeDTO, 0, len(holderIDs))
	for _, holderID := range holderIDs {
		u, ok := usersByID[holderID]
		if !ok {
			// Holder deleted by identity sync.
			continue
		}
		attendees = append(attendees, toAttendee(u, byHolder[holderID], typesByID))
	}
	return attendees, nil
}

func toAttendee(u *user.User, tickets []*ticket.Ticket, typesByID map[uint]*event.TicketType) dto.AttendeeDTO {
	a := dto.AttendeeDTO{
		User:    dto.ToAttendeeUserDTO(u),
		Tickets: make([]dto.TicketDTO, 0, len(tickets)),
	}
	for _, t := range tickets {
		tt := typesByID[t.TicketTypeID()]
		a.Tickets = append(a.Tickets, dto.ToTicketDTO(t, tt))
		if tt == nil {
			continue
		}
		a.TotalPaid += tt.Price()
		if a.Currency == "" {
			a.Currency = tt.Currency()
		}
	}
	a.TicketCount = len(a.Tickets)
	if a.Currency != "" {
		a.TotalPaidDisplay = vo.NewMoney(a.TotalPaid, a.Currency).String()
	}
	return a
}
