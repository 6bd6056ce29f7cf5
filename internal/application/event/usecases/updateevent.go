package usecases

import (
	"context"
	"errors"

	"github.com/eventora/eventora/internal/application/event/dto"
	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
	"github.com/eventora/eventora/internal/shared/services/markdown"
)

type UpdateEventCommand struct {
	EventID  uint
	UserID   uint
	UserRole authorization.UserRole
	Event    EventInput
}

// UpdateEventUseCase edits an event that is still pending review.
// The slug is kept when the title changes.
type UpdateEventUseCase struct {
	eventRepo    event.Repository
	categoryRepo category.Repository
	renderer     markdown.Renderer
	txMgr        *db.TransactionManager
	logger       logger.Interface
}

func NewUpdateEventUseCase(
	eventRepo event.Repository,
	categoryRepo category.Repository,
	renderer markdown.Renderer,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateEventUseCase {
	return &UpdateEventUseCase{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		renderer:     renderer,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *UpdateEventUseCase) Execute(ctx context.Context, cmd UpdateEventCommand) (*dto.EventDTO, error) {
	details, err := cmd.Event.details(ctx, uc.categoryRepo, uc.renderer)
	if err != nil {
		return nil, toAppError(err, "update event")
	}

	var updated *event.Event
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		e, err := uc.eventRepo.GetByID(txCtx, cmd.EventID)
		if err != nil {
			return err
		}
		if !authorization.CanManageEvent(cmd.UserID, cmd.UserRole, e.OrganizerID()) {
			return errNotEventOwner
		}
		if err := e.UpdateDetails(details); err != nil {
			if errors.Is(err, event.ErrEventNotEditable) {
				return err
			}
			return invalidInput(err)
		}
		updated = e
		return uc.eventRepo.Update(txCtx, e)
	})
	if err != nil {
		return nil, toAppError(err, "update event")
	}

	uc.logger.Infow("event updated", "event_id", updated.ID(), "user_id", cmd.UserID)
	return dto.ToEventDTO(updated), nil
}
