package usecases

import (
	"context"

	"github.com/eventora/eventora/internal/application/user/dto"
	"github.com/eventora/eventora/internal/domain/user"
)

type SyncIdentityExecutor interface {
	Execute(ctx context.Context, cmd SyncIdentityCommand) (*dto.UserResponse, bool, error)
}

type DeleteIdentityExecutor interface {
	Execute(ctx context.Context, externalID string) error
}

type ManageUserExecutor interface {
	ChangeRole(ctx context.Context, cmd ChangeUserRoleCommand) (*dto.UserResponse, error)
	ChangeStatus(ctx context.Context, cmd ChangeUserStatusCommand) (*dto.UserResponse, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

// IdentityResolver is used by the auth middleware.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, externalID string) (*user.User, error)
}
