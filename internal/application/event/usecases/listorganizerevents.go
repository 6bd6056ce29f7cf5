package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/eventora/eventora/internal/application/event/dto"
	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/shared/biztime"
	"github.com/eventora/eventora/internal/shared/logger"
)

type ListOrganizerEventsQuery struct {
	OrganizerID uint
}

// ListOrganizerEventsUseCase lists every event of an organizer, drafts
// included: upcoming events soonest first, then past events most recent first.
// Each event carries its sales stats.
type ListOrganizerEventsUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	ticketRepo     ticket.Repository
	categoryRepo   category.Repository
	logger         logger.Interface
	now            biztime.Clock
}

func NewListOrganizerEventsUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	ticketRepo ticket.Repository,
	categoryRepo category.Repository,
	logger logger.Interface,
) *ListOrganizerEventsUseCase {
	return &ListOrganizerEventsUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		ticketRepo:     ticketRepo,
		categoryRepo:   categoryRepo,
		logger:         logger,
		now:            biztime.NowUTC,
	}
}

func (uc *ListOrganizerEventsUseCase) Execute(ctx context.Context, query ListOrganizerEventsQuery) ([]*dto.OrganizerEventDTO, error) {
	events, err := uc.eventRepo.ListByOrganizer(ctx, query.OrganizerID)
	if err != nil {
		uc.logger.Errorw("failed to list organizer events", "error", err, "organizer_id", query.OrganizerID)
		return nil, fmt.Errorf("failed to list organizer events: %w", err)
	}
	sortUpcomingFirst(events, uc.now())

	eventIDs := make([]uint, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID())
	}
	ticketTypes, err := uc.ticketTypeRepo.ListByEvents(ctx, eventIDs, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	typesByEvent := make(map[uint][]*event.TicketType, len(events))
	for _, tt := range ticketTypes {
		typesByEvent[tt.EventID()] = append(typesByEvent[tt.EventID()], tt)
	}
	tickets, err := uc.ticketRepo.ListByEvents(ctx, eventIDs)
	if err != nil {
		uc.logger.Errorw("failed to list organizer tickets", "error", err, "organizer_id", query.OrganizerID)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	ticketsByEvent := make(map[uint][]*ticket.Ticket, len(events))
	for _, t := range tickets {
		ticketsByEvent[t.EventID()] = append(ticketsByEvent[t.EventID()], t)
	}

	categories := listEnricher{categoryRepo: uc.categoryRepo, logger: uc.logger}.categories(ctx)

	result := make([]*dto.OrganizerEventDTO, 0, len(events))
	for _, e := range events {
		result = append(result, &dto.OrganizerEventDTO{
			EventDTO:    dto.ToEventDTO(e),
			Category:    categories[e.CategoryID()],
			TicketTypes: dto.ToTicketTypeDTOs(typesByEvent[e.ID()]),
			Stats:       dto.NewEventStats(ticketsByEvent[e.ID()], typesByEvent[e.ID()]),
		})
	}
	return result, nil
}

func sortUpcomingFirst(events []*event.Event, now time.Time) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].StartDate(), events[j].StartDate()
		aUpcoming, bUpcoming := a.After(now), b.After(now)
		switch {
		case aUpcoming && bUpcoming:
			return a.Before(b)
		case !aUpcoming && !bUpcoming:
			return a.After(b)
		default:
			return aUpcoming
		}
	})
}
