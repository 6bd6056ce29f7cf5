package usecases

import (
	"errors"
	"fmt"

	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/event"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
)

var (
	errNotEventOwner = errors.New("only the event organizer or an admin can manage this event")
	errNotOrganizer  = errors.New("organizer role required")
	errAdminRequired = errors.New("admin access required")
)

func toAppError(err error, action string) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}
	switch {
	case errors.Is(err, event.ErrEventNotFound),
		errors.Is(err, event.ErrTicketTypeNotFound):
		return apperrors.NewNotFoundError(err.Error()).WithCause(err)
	case errors.Is(err, event.ErrEventAlreadyReviewed),
		errors.Is(err, event.ErrEventNotEditable):
		return apperrors.NewConflictError(err.Error()).WithCause(err)
	case errors.Is(err, category.ErrCategoryNotFound):
		return apperrors.NewValidationError(err.Error()).WithCause(err)
	case errors.Is(err, errNotEventOwner),
		errors.Is(err, errNotOrganizer),
		errors.Is(err, errAdminRequired):
		return apperrors.NewForbiddenError(err.Error()).WithCause(err)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// invalidInput reports a rejected domain constructor as a validation error.
func invalidInput(err error) error {
	return apperrors.NewValidationError(err.Error()).WithCause(err)
}
