package usecases

import (
	"context"

	"github.com/eventora/eventora/internal/application/event/dto"
	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/services/markdown"
	"github.com/eventora/eventora/internal/shared/utils"
)

type CreateEventCommand struct {
	OrganizerID   uint
	OrganizerRole authorization.UserRole
	Event         EventInput
	TicketTypes   []TicketTypeInput
}

// CreateEventUseCase creates an unpublished draft awaiting admin review,
// optionally with its ticket types.
type CreateEventUseCase struct {
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	categoryRepo   category.Repository
	renderer       markdown.Renderer
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

func NewCreateEventUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	categoryRepo category.Repository,
	renderer markdown.Renderer,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *CreateEventUseCase {
	return &CreateEventUseCase{
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		categoryRepo:   categoryRepo,
		renderer:       renderer,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CreateEventUseCase) Execute(ctx context.Context, cmd CreateEventCommand) (*dto.CreateEventResultDTO, error) {
	if cmd.OrganizerID == 0 || !cmd.OrganizerRole.CanOrganize() {
		return nil, toAppError(errNotOrganizer, "create event")
	}

	details, err := cmd.Event.details(ctx, uc.categoryRepo, uc.renderer)
	if err != nil {
		return nil, toAppError(err, "create event")
	}

	var created *event.Event
	var ticketTypes []*event.TicketType
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		slug, err := utils.UniqueSlug(utils.Slugify(details.Title), func(candidate string) (bool, error) {
			return uc.eventRepo.SlugExists(txCtx, candidate)
		})
		if err != nil {
			return err
		}

		e, err := event.NewEvent(cmd.OrganizerID, slug, details)
		if err != nil {
			return invalidInput(err)
		}
		if err := uc.eventRepo.Create(txCtx, e); err != nil {
			return err
		}

		for _, input := range cmd.TicketTypes {
			tt, err := event.NewTicketType(e.ID(), input.params())
			if err != nil {
				return invalidInput(err)
			}
			if err := uc.ticketTypeRepo.Create(txCtx, tt); err != nil {
				return err
			}
			ticketTypes = append(ticketTypes, tt)
		}
		created = e
		return nil
	})
	if err != nil {
		uc.logger.Warnw("event creation failed", "error", err, "organizer_id", cmd.OrganizerID)
		return nil, toAppError(err, "create event")
	}

	uc.logger.Infow("event created",
		"event_id", created.ID(),
		"slug", created.Slug(),
		"organizer_id", cmd.OrganizerID,
		"ticket_types", len(ticketTypes),
	)
	return &dto.CreateEventResultDTO{
		EventID:     created.ID(),
		Slug:        created.Slug(),
		TicketTypes: dto.ToTicketTypeDTOs(ticketTypes),
	}, nil
}
