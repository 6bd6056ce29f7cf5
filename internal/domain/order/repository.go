package order

import (
	"context"
	"time"
)

type Repository interface {
	// Create persists the order and its items.
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	// MarkCompleted persists a completion only if the stored order is still pending.
	MarkCompleted(ctx context.Context, order *Order) error
	// MarkCancelled persists a cancellation only if the stored order is still pending.
	MarkCancelled(ctx context.Context, order *Order) error
	HasCompletedForEvent(ctx context.Context, userID, eventID uint) (bool, error)
	GetLatestCompletedForEvent(ctx context.Context, userID, eventID uint) (*Order, error)
	// ListExpiredPending returns pending orders whose expiresAt is at or
	// before now, leaving out the excluded order IDs.
	ListExpiredPending(ctx context.Context, now time.Time, limit int, exclude ...uint) ([]*Order, error)
}
