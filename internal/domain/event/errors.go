package event

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventAlreadyReviewed = errors.New("event has already been reviewed")
	ErrEventNotEditable     = errors.New("event can only be edited while pending review")
	ErrTicketTypeNotFound   = errors.New("ticket type not found")
	ErrTicketTypeNotOnSale  = errors.New("ticket type is not on sale")
	ErrQuantityOutOfRange   = errors.New("quantity outside the per-order limits")
	// ErrInsufficientInventory is returned when a reservation would push
	// soldQuantity above totalQuantity.
	ErrInsufficientInventory = errors.New("insufficient inventory")
)
