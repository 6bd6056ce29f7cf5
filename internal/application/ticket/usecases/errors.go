package usecases

import (
	"errors"
	"fmt"

	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/ticket"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
)

var errNotEventStaff = errors.New("only the event organizer or an admin can manage its tickets")

func toAppError(err error, action string) error {
	if err == nil || apperrors.IsAppError(err) {
		return err
	}
	switch {
	case errors.Is(err, ticket.ErrAlreadyCheckedIn),
		errors.Is(err, ticket.ErrTicketVoided),
		errors.Is(err, ticket.ErrInvalidTransition):
		return apperrors.NewConflictError(err.Error()).WithCause(err)
	case errors.Is(err, ticket.ErrTicketWrongEvent):
		return apperrors.NewBadRequestError(err.Error()).WithCause(err)
	case errors.Is(err, ticket.ErrTicketNotFound),
		errors.Is(err, event.ErrEventNotFound):
		return apperrors.NewNotFoundError(err.Error()).WithCause(err)
	case errors.Is(err, errNotEventStaff):
		return apperrors.NewForbiddenError(err.Error()).WithCause(err)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
