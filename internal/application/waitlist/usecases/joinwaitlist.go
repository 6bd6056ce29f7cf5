package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/waitlist"
	"github.com/eventora/eventora/internal/shared/biztime"
	"github.com/eventora/eventora/internal/shared/db"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
	"github.com/eventora/eventora/internal/shared/logger"
)

type JoinWaitlistCommand struct {
	EventID uint
	UserID  uint
}

type JoinWaitlistResult struct {
	EntryID uint   `json:"entry_id"`
	Status  string `json:"status"`
	Joined  bool   `json:"joined"`
}

type JoinWaitlistExecutor interface {
	Execute(ctx context.Context, cmd JoinWaitlistCommand) (*JoinWaitlistResult, error)
}

// JoinWaitlistUseCase records interest in a published event. Joining twice
// returns the existing entry.
type JoinWaitlistUseCase struct {
	eventRepo    event.Repository
	waitlistRepo waitlist.Repository
	txMgr        *db.TransactionManager
	logger       logger.Interface
	now          biztime.Clock
}

func NewJoinWaitlistUseCase(
	eventRepo event.Repository,
	waitlistRepo waitlist.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *JoinWaitlistUseCase {
	return &JoinWaitlistUseCase{
		eventRepo:    eventRepo,
		waitlistRepo: waitlistRepo,
		txMgr:        txMgr,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *JoinWaitlistUseCase) Execute(ctx context.Context, cmd JoinWaitlistCommand) (*JoinWaitlistResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("not authenticated")
	}

	ev, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return nil, apperrors.NewNotFoundError(err.Error()).WithCause(err)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if !ev.IsPubliclyVisible() {
		return nil, apperrors.NewNotFoundError(event.ErrEventNotFound.Error()).WithCause(event.ErrEventNotFound)
	}

	var result *JoinWaitlistResult
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.waitlistRepo.GetByEventAndUser(txCtx, ev.ID(), cmd.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			result = &JoinWaitlistResult{EntryID: existing.ID(), Status: string(existing.Status())}
			return nil
		}

		entry, err := waitlist.NewEntry(ev.ID(), cmd.UserID, uc.now())
		if err != nil {
			return err
		}
		if err := uc.waitlistRepo.Create(txCtx, entry); err != nil {
			return err
		}
		result = &JoinWaitlistResult{EntryID: entry.ID(), Status: string(entry.Status()), Joined: true}
		return nil
	})
	if errors.Is(err, waitlist.ErrAlreadyJoined) {
		existing, getErr := uc.waitlistRepo.GetByEventAndUser(ctx, ev.ID(), cmd.UserID)
		if getErr == nil && existing != nil {
			return &JoinWaitlistResult{EntryID: existing.ID(), Status: string(existing.Status())}, nil
		}
	}
	if err != nil {
		uc.logger.Errorw("failed to join waitlist", "error", err, "event_id", cmd.EventID, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to join waitlist: %w", err)
	}

	if result.Joined {
		uc.logger.Infow("waitlist joined", "event_id", ev.ID(), "user_id", cmd.UserID, "entry_id", result.EntryID)
	}
	return result, nil
}
