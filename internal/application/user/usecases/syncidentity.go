package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eventora/eventora/internal/application/user/dto"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/db"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
	"github.com/eventora/eventora/internal/shared/logger"
)

// SyncIdentityCommand carries a profile pushed by the identity provider
type SyncIdentityCommand struct {
	ExternalID string
	Email      string
	FirstName  string
	LastName   string
	ImageURL   string
	Username   string
	Phone      string
}

// SyncIdentityUseCase mirrors an external identity into a local user.
// First sight creates an active attendee; later syncs only touch the profile.
type SyncIdentityUseCase struct {
	userRepo user.Repository
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

// NewSyncIdentityUseCase creates a new sync identity use case
func NewSyncIdentityUseCase(userRepo user.Repository, txMgr *db.TransactionManager, logger logger.Interface) *SyncIdentityUseCase {
	return &SyncIdentityUseCase{
		userRepo: userRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// Execute upserts the user and reports whether it was created
func (uc *SyncIdentityUseCase) Execute(ctx context.Context, cmd SyncIdentityCommand) (*dto.UserResponse, bool, error) {
	externalID := strings.TrimSpace(cmd.ExternalID)
	if externalID == "" {
		return nil, false, apperrors.NewValidationError("external identity is required")
	}
	profile := user.Profile{
		Email:     cmd.Email,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		ImageURL:  cmd.ImageURL,
		Username:  cmd.Username,
		Phone:     cmd.Phone,
	}

	var synced *user.User
	created := false
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.userRepo.GetByExternalID(txCtx, externalID)
		switch {
		case err == nil:
			if err := existing.SyncProfile(profile); err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			synced = existing
			return uc.userRepo.Update(txCtx, existing)
		case errors.Is(err, user.ErrUserNotFound):
			u, err := user.NewUser(externalID, profile)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			if err := uc.userRepo.Create(txCtx, u); err != nil {
				return err
			}
			synced, created = u, true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, false, err
		}
		uc.logger.Errorw("failed to sync identity", "error", err, "external_id", externalID)
		return nil, false, fmt.Errorf("failed to sync identity: %w", err)
	}

	uc.logger.Infow("identity synced",
		"user_id", synced.ID(),
		"external_id", externalID,
		"created", created,
	)
	return dto.ToUserResponse(synced), created, nil
}
