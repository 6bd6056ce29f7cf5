package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/domain/user"
)

// resolveBuyer loads the purchasing user. Only synced, active users may buy.
func resolveBuyer(ctx context.Context, users user.Repository, userID uint) (*user.User, error) {
	if userID == 0 {
		return nil, user.ErrUserNotFound
	}
	buyer, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !buyer.IsActive() {
		return nil, user.ErrUserSuspended
	}
	return buyer, nil
}

// loadOnSaleEvent returns the event if attendees may currently buy tickets for it.
func loadOnSaleEvent(ctx context.Context, events event.Repository, eventID uint) (*event.Event, error) {
	ev, err := events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !ev.IsPubliclyVisible() {
		return nil, event.ErrEventNotFound
	}
	return ev, nil
}

// checkPurchasable applies the ticket type's purchase rules to one line.
// Failures carry both the ledger sentinel and the ticket type cause.
func checkPurchasable(tt *event.TicketType, quantity int, now time.Time) error {
	err := tt.CheckPurchase(quantity, now)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, event.ErrQuantityOutOfRange):
		return fmt.Errorf("%w: %w", order.ErrInvalidQuantity, err)
	default:
		return fmt.Errorf("%w: %w", order.ErrInvalidTicketType, err)
	}
}
