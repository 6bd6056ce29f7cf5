package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventora/eventora/internal/application/user/dto"
	"github.com/eventora/eventora/internal/domain/user"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
	"github.com/eventora/eventora/internal/shared/logger"
)

// GetCurrentUserUseCase resolves the caller's local account
type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewGetCurrentUserUseCase creates a new get current user use case
func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo, logger: logger}
}

// Execute returns the user by internal ID
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("user not synced").WithCause(err)
		}
		uc.logger.Errorw("failed to get current user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return dto.ToUserResponse(u), nil
}

// ResolveIdentity maps an external identity to its local user. The auth
// middleware calls it for every authenticated request.
func (uc *GetCurrentUserUseCase) ResolveIdentity(ctx context.Context, externalID string) (*user.User, error) {
	u, err := uc.userRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}
	return u, nil
}
