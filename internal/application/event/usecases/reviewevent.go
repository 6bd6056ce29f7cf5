package usecases

import (
	"context"
	"fmt"

	"github.com/eventora/eventora/internal/application/event/dto"
	"github.com/eventora/eventora/internal/domain/event"
	vo "github.com/eventora/eventora/internal/domain/event/valueobjects"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/biztime"
	"github.com/eventora/eventora/internal/shared/db"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
	"github.com/eventora/eventora/internal/shared/logger"
)

type ReviewEventCommand struct {
	EventID      uint
	ReviewerID   uint
	ReviewerRole authorization.UserRole
	Decision     string
	Notes        string
}

// ReviewEventUseCase applies an admin's approve or reject decision.
// Approval publishes the event; a decision cannot be changed afterwards.
type ReviewEventUseCase struct {
	eventRepo event.Repository
	txMgr     *db.TransactionManager
	logger    logger.Interface
	now       biztime.Clock
}

func NewReviewEventUseCase(eventRepo event.Repository, txMgr *db.TransactionManager, logger logger.Interface) *ReviewEventUseCase {
	return &ReviewEventUseCase{
		eventRepo: eventRepo,
		txMgr:     txMgr,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *ReviewEventUseCase) Execute(ctx context.Context, cmd ReviewEventCommand) (*dto.ReviewResultDTO, error) {
	if cmd.ReviewerID == 0 {
		return nil, apperrors.NewUnauthorizedError("not authenticated")
	}
	if !cmd.ReviewerRole.IsAdmin() {
		return nil, toAppError(errAdminRequired, "review event")
	}
	decision := vo.ReviewDecision(cmd.Decision)
	if !decision.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid review decision %q", cmd.Decision))
	}

	var reviewed *event.Event
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		e, err := uc.eventRepo.GetByID(txCtx, cmd.EventID)
		if err != nil {
			return err
		}
		if err := e.Review(decision, cmd.ReviewerID, cmd.Notes, uc.now()); err != nil {
			return err
		}
		reviewed = e
		return uc.eventRepo.Update(txCtx, e)
	})
	if err != nil {
		uc.logger.Warnw("event review failed", "error", err, "event_id", cmd.EventID)
		return nil, toAppError(err, "review event")
	}

	uc.logger.Infow("event reviewed",
		"event_id", reviewed.ID(),
		"status", reviewed.ApprovalStatus().String(),
		"reviewer_id", cmd.ReviewerID,
	)
	return &dto.ReviewResultDTO{
		EventID:     reviewed.ID(),
		Status:      reviewed.ApprovalStatus().String(),
		IsPublished: reviewed.IsPublished(),
	}, nil
}
