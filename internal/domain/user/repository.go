package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	GetByExternalID(ctx context.Context, externalID string) (*User, error)
	// LockByID takes a row lock on the user for the rest of the transaction in ctx.
	// Purchases lock the buyer so the one-completed-order check cannot race.
	LockByID(ctx context.Context, id uint) error
	DeleteByExternalID(ctx context.Context, externalID string) error
}
