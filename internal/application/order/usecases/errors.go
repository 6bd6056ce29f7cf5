package usecases

import (
	"errors"
	"fmt"

	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/domain/user"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
)

// toAppError maps ledger sentinel errors to client-facing errors.
// The sentinel stays reachable through errors.Is.
func toAppError(err error) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}
	switch {
	case errors.Is(err, order.ErrAlreadyRegistered),
		errors.Is(err, order.ErrOrderNotPending),
		errors.Is(err, order.ErrOrderExpired),
		errors.Is(err, event.ErrInsufficientInventory):
		return apperrors.NewConflictError(rootMessage(err)).WithCause(err)
	case errors.Is(err, order.ErrInvalidFreeTicket),
		errors.Is(err, order.ErrInvalidTicketType),
		errors.Is(err, order.ErrZeroAmountRejected),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrItemsMismatch):
		return apperrors.NewValidationError(rootMessage(err)).WithCause(err)
	case errors.Is(err, order.ErrPaymentNotVerified):
		return apperrors.NewBadRequestError(rootMessage(err)).WithCause(err)
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, event.ErrEventNotFound):
		return apperrors.NewNotFoundError(rootMessage(err)).WithCause(err)
	case errors.Is(err, user.ErrUserNotFound):
		return apperrors.NewUnauthorizedError("user not synced").WithCause(err)
	case errors.Is(err, user.ErrUserSuspended):
		return apperrors.NewForbiddenError(rootMessage(err)).WithCause(err)
	}
	return err
}

// ledgerFailure returns the client-facing error for err, or wraps it as an
// internal failure of action.
func ledgerFailure(err error, action string) error {
	mapped := toAppError(err)
	if apperrors.IsAppError(mapped) {
		return mapped
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// rejectionReason labels a failed purchase for metrics.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, order.ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, event.ErrInsufficientInventory):
		return "insufficient_inventory"
	case errors.Is(err, order.ErrInvalidFreeTicket), errors.Is(err, order.ErrInvalidTicketType):
		return "invalid_ticket_type"
	case errors.Is(err, order.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, order.ErrZeroAmountRejected):
		return "zero_amount"
	case errors.Is(err, order.ErrOrderExpired):
		return "expired"
	case errors.Is(err, order.ErrOrderNotPending):
		return "not_pending"
	case errors.Is(err, order.ErrPaymentNotVerified):
		return "payment_not_verified"
	default:
		return "other"
	}
}
