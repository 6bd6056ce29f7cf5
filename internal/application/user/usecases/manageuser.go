package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventora/eventora/internal/application/user/dto"
	"github.com/eventora/eventora/internal/domain/user"
	vo "github.com/eventora/eventora/internal/domain/user/valueobjects"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/db"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
	"github.com/eventora/eventora/internal/shared/logger"
)

// ChangeUserRoleCommand is issued by an admin to promote or demote a user
type ChangeUserRoleCommand struct {
	ActorID uint
	UserID  uint
	Role    string
}

// ChangeUserStatusCommand is issued by an admin to suspend or reactivate a user
type ChangeUserStatusCommand struct {
	ActorID uint
	UserID  uint
	Status  string
}

// ManageUserUseCase applies admin changes to role and status. These fields
// belong to this service and are never overwritten by identity sync.
type ManageUserUseCase struct {
	userRepo user.Repository
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

// NewManageUserUseCase creates a new manage user use case
func NewManageUserUseCase(userRepo user.Repository, txMgr *db.TransactionManager, logger logger.Interface) *ManageUserUseCase {
	return &ManageUserUseCase{
		userRepo: userRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// ChangeRole sets the role of a user. Admins cannot demote themselves.
func (uc *ManageUserUseCase) ChangeRole(ctx context.Context, cmd ChangeUserRoleCommand) (*dto.UserResponse, error) {
	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid role %q", cmd.Role))
	}
	if cmd.ActorID == cmd.UserID && !role.IsAdmin() {
		return nil, apperrors.NewValidationError("admins cannot remove their own admin role")
	}

	updated, err := uc.mutate(ctx, cmd.UserID, func(u *user.User) error {
		return u.ChangeRole(role)
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("user role changed", "user_id", cmd.UserID, "role", role, "actor_id", cmd.ActorID)
	return updated, nil
}

// ChangeStatus suspends or reactivates a user. Suspended users keep their
// tickets but cannot buy or register.
func (uc *ManageUserUseCase) ChangeStatus(ctx context.Context, cmd ChangeUserStatusCommand) (*dto.UserResponse, error) {
	status := vo.Status(cmd.Status)
	if !status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status %q", cmd.Status))
	}
	if cmd.ActorID == cmd.UserID && !status.IsActive() {
		return nil, apperrors.NewValidationError("admins cannot suspend themselves")
	}

	updated, err := uc.mutate(ctx, cmd.UserID, func(u *user.User) error {
		return u.ChangeStatus(status)
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("user status changed", "user_id", cmd.UserID, "status", status, "actor_id", cmd.ActorID)
	return updated, nil
}

func (uc *ManageUserUseCase) mutate(ctx context.Context, userID uint, change func(*user.User) error) (*dto.UserResponse, error) {
	var updated *user.User
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.LockByID(txCtx, userID); err != nil {
			return err
		}
		u, err := uc.userRepo.GetByID(txCtx, userID)
		if err != nil {
			return err
		}
		if err := change(u); err != nil {
			return err
		}
		updated = u
		return uc.userRepo.Update(txCtx, u)
	})
	switch {
	case err == nil:
		return dto.ToUserResponse(updated), nil
	case errors.Is(err, user.ErrUserNotFound):
		return nil, apperrors.NewNotFoundError("user not found").WithCause(err)
	case errors.Is(err, user.ErrInvalidRole), errors.Is(err, user.ErrInvalidStatus):
		return nil, apperrors.NewValidationError(err.Error()).WithCause(err)
	default:
		uc.logger.Errorw("failed to update user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
}
