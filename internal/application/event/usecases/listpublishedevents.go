package usecases

import (
	"context"
	"fmt"
	"strings"

	categorydto "github.com/eventora/eventora/internal/application/category/dto"
	"github.com/eventora/eventora/internal/application/event/dto"
	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/logger"
)

type ListPublishedEventsQuery struct {
	CategoryID uint
	Search     string
	Limit      int
}

// ListPublishedEventsUseCase serves the public catalogue: approved and
// published events ordered by start date, each with the price range and
// remaining capacity of its visible ticket types.
type ListPublishedEventsUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	categoryRepo   category.Repository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewListPublishedEventsUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	categoryRepo category.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListPublishedEventsUseCase {
	return &ListPublishedEventsUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *ListPublishedEventsUseCase) Execute(ctx context.Context, query ListPublishedEventsQuery) ([]*dto.EventListItemDTO, error) {
	events, err := uc.eventRepo.ListPublished(ctx, event.ListFilter{
		CategoryID: query.CategoryID,
		Search:     strings.TrimSpace(query.Search),
		Limit:      query.Limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list published events", "error", err)
		return nil, fmt.Errorf("failed to list published events: %w", err)
	}

	enricher := listEnricher{
		ticketTypeRepo: uc.ticketTypeRepo,
		categoryRepo:   uc.categoryRepo,
		userRepo:       uc.userRepo,
		logger:         uc.logger,
	}
	return enricher.items(ctx, events, true)
}

// listEnricher joins events with their ticket types, categories and organizers.
type listEnricher struct {
	ticketTypeRepo event.TicketTypeRepository
	categoryRepo   category.Repository
	userRepo       user.Repository
	logger         logger.Interface
}

func (l listEnricher) items(ctx context.Context, events []*event.Event, visibleOnly bool) ([]*dto.EventListItemDTO, error) {
	if len(events) == 0 {
		return []*dto.EventListItemDTO{}, nil
	}

	eventIDs := make([]uint, 0, len(events))
	organizerIDs := make([]uint, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID())
		organizerIDs = append(organizerIDs, e.OrganizerID())
	}

	ticketTypes, err := l.ticketTypeRepo.ListByEvents(ctx, eventIDs, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	typesByEvent := make(map[uint][]*event.TicketType, len(events))
	for _, tt := range ticketTypes {
		typesByEvent[tt.EventID()] = append(typesByEvent[tt.EventID()], tt)
	}

	categories := l.categories(ctx)
	organizers := l.organizers(ctx, organizerIDs)

	items := make([]*dto.EventListItemDTO, 0, len(events))
	for _, e := range events {
		types := typesByEvent[e.ID()]
		available := dto.AvailableTickets(types)
		items = append(items, &dto.EventListItemDTO{
			EventDTO:         dto.ToEventDTO(e),
			Category:         categories[e.CategoryID()],
			Organizer:        organizers[e.OrganizerID()],
			PriceRange:       dto.NewPriceRange(types),
			AvailableTickets: available,
			IsSoldOut:        available == 0,
		})
	}
	return items, nil
}

// categories fails open: a listing without category labels is still useful.
func (l listEnricher) categories(ctx context.Context) map[uint]*categorydto.CategoryDTO {
	result := make(map[uint]*categorydto.CategoryDTO)
	list, err := l.categoryRepo.List(ctx)
	if err != nil {
		l.logger.Warnw("failed to load categories for event listing", "error", err)
		return result
	}
	for _, c := range list {
		result[c.ID()] = categorydto.ToCategoryDTO(c)
	}
	return result
}

func (l listEnricher) organizers(ctx context.Context, ids []uint) map[uint]*dto.OrganizerDTO {
	result := make(map[uint]*dto.OrganizerDTO)
	users, err := l.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		l.logger.Warnw("failed to load organizers for event listing", "error", err)
		return result
	}
	for _, u := range users {
		result[u.ID()] = dto.ToOrganizerDTO(u)
	}
	return result
}
