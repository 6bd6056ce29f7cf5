package ticket

import "errors"

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrAlreadyCheckedIn  = errors.New("ticket is already checked in")
	ErrTicketVoided      = errors.New("ticket has been voided")
	ErrTicketWrongEvent  = errors.New("ticket is not for this event")
	ErrInvalidTransition = errors.New("invalid ticket status transition")
)
