package usecases

import (
	"context"
	"errors"

	categorydto "github.com/eventora/eventora/internal/application/category/dto"
	"github.com/eventora/eventora/internal/application/event/dto"
	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/logger"
)

type GetManagedEventQuery struct {
	EventID  uint
	UserID   uint
	UserRole authorization.UserRole
}

// GetManagedEventUseCase loads one event for its organizer or an admin,
// whatever its approval state.
type GetManagedEventUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	ticketRepo     ticket.Repository
	categoryRepo   category.Repository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewGetManagedEventUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	ticketRepo ticket.Repository,
	categoryRepo category.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetManagedEventUseCase {
	return &GetManagedEventUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		ticketRepo:     ticketRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *GetManagedEventUseCase) Execute(ctx context.Context, query GetManagedEventQuery) (*dto.ManagedEventDTO, error) {
	e, err := uc.eventRepo.GetByID(ctx, query.EventID)
	if err != nil {
		return nil, toAppError(err, "get event")
	}
	if !authorization.CanManageEvent(query.UserID, query.UserRole, e.OrganizerID()) {
		uc.logger.Warnw("event management view requested by non-organizer",
			"event_id", e.ID(),
			"user_id", query.UserID,
		)
		return nil, toAppError(errNotEventOwner, "get event")
	}

	ticketTypes, err := uc.ticketTypeRepo.ListByEvent(ctx, e.ID(), false)
	if err != nil {
		return nil, toAppError(err, "list ticket types")
	}
	tickets, err := uc.ticketRepo.ListByEvent(ctx, e.ID())
	if err != nil {
		uc.logger.Errorw("failed to list event tickets", "error", err, "event_id", e.ID())
		return nil, toAppError(err, "list tickets")
	}

	result := &dto.ManagedEventDTO{
		EventDTO:         dto.ToEventDTO(e),
		TicketTypes:      dto.ToTicketTypeDTOs(ticketTypes),
		AvailableTickets: dto.AvailableTickets(ticketTypes),
		PriceRange:       dto.NewPriceRange(ticketTypes),
		Stats:            dto.NewEventStats(tickets, ticketTypes),
	}

	if e.CategoryID() != 0 {
		c, err := uc.categoryRepo.GetByID(ctx, e.CategoryID())
		switch {
		case err == nil:
			result.Category = categorydto.ToCategoryDTO(c)
		case !errors.Is(err, category.ErrCategoryNotFound):
			uc.logger.Warnw("failed to load event category", "error", err, "event_id", e.ID())
		}
	}

	organizer, err := uc.userRepo.GetByID(ctx, e.OrganizerID())
	switch {
	case err == nil:
		result.Organizer = dto.ToOrganizerDTO(organizer)
		result.Organizer.Email = organizer.Email()
	case !errors.Is(err, user.ErrUserNotFound):
		uc.logger.Warnw("failed to load event organizer", "error", err, "event_id", e.ID())
	}

	return result, nil
}
