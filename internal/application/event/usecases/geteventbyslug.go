package usecases

import (
	"context"
	"errors"

	categorydto "github.com/eventora/eventora/internal/application/category/dto"
	"github.com/eventora/eventora/internal/application/event/dto"
	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/services/markdown"
)

// GetEventBySlugUseCase returns the newest published event with the slug,
// its visible ticket types and the rendered description.
type GetEventBySlugUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	categoryRepo   category.Repository
	userRepo       user.Repository
	renderer       markdown.Renderer
	logger         logger.Interface
}

func NewGetEventBySlugUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	categoryRepo category.Repository,
	userRepo user.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetEventBySlugUseCase {
	return &GetEventBySlugUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
		renderer:       renderer,
		logger:         logger,
	}
}

func (uc *GetEventBySlugUseCase) Execute(ctx context.Context, slug string) (*dto.EventDetailDTO, error) {
	e, err := uc.eventRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, toAppError(err, "get event")
	}

	ticketTypes, err := uc.ticketTypeRepo.ListByEvent(ctx, e.ID(), true)
	if err != nil {
		return nil, toAppError(err, "list ticket types")
	}

	html, err := uc.renderer.ToHTML(e.Description())
	if err != nil {
		uc.logger.Warnw("failed to render event description", "error", err, "event_id", e.ID())
	}

	detail := &dto.EventDetailDTO{
		EventDTO:        dto.ToEventDTO(e),
		DescriptionHTML: html,
		TicketTypes:     dto.ToTicketTypeDTOs(ticketTypes),
	}

	if e.CategoryID() != 0 {
		c, err := uc.categoryRepo.GetByID(ctx, e.CategoryID())
		switch {
		case err == nil:
			detail.Category = categorydto.ToCategoryDTO(c)
		case !errors.Is(err, category.ErrCategoryNotFound):
			uc.logger.Warnw("failed to load event category", "error", err, "event_id", e.ID())
		}
	}

	organizer, err := uc.userRepo.GetByID(ctx, e.OrganizerID())
	switch {
	case err == nil:
		detail.Organizer = dto.ToOrganizerDTO(organizer)
	case !errors.Is(err, user.ErrUserNotFound):
		uc.logger.Warnw("failed to load event organizer", "error", err, "event_id", e.ID())
	}

	return detail, nil
}
