package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/logger"
)

// DeleteIdentityUseCase removes the local user of a deleted external identity
type DeleteIdentityUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewDeleteIdentityUseCase creates a new delete identity use case
func NewDeleteIdentityUseCase(userRepo user.Repository, logger logger.Interface) *DeleteIdentityUseCase {
	return &DeleteIdentityUseCase{userRepo: userRepo, logger: logger}
}

// Execute is idempotent: deleting an unknown identity succeeds
func (uc *DeleteIdentityUseCase) Execute(ctx context.Context, externalID string) error {
	err := uc.userRepo.DeleteByExternalID(ctx, externalID)
	if errors.Is(err, user.ErrUserNotFound) {
		uc.logger.Debugw("identity already absent", "external_id", externalID)
		return nil
	}
	if err != nil {
		uc.logger.Errorw("failed to delete identity", "error", err, "external_id", externalID)
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	uc.logger.Infow("identity deleted", "external_id", externalID)
	return nil
}
