package order

import "errors"

var (
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrInvalidFreeTicket  = errors.New("ticket type is not a free ticket for this event")
	ErrInvalidTicketType  = errors.New("invalid ticket type")
	ErrZeroAmountRejected = errors.New("paid checkout requires a positive amount")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPending    = errors.New("order is not pending payment")
	ErrOrderExpired       = errors.New("order payment window has expired")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrPaymentNotVerified = errors.New("payment could not be verified")
	ErrItemsMismatch      = errors.New("items do not match the reserved order")
)
