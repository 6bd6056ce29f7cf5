package ticket

import (
	"fmt"
	"time"

	vo "github.com/eventora/eventora/internal/domain/ticket/valueobjects"
)

// Ticket is a single admission issued by a completed order.
type Ticket struct {
	id           uint
	orderID      uint
	eventID      uint
	ticketTypeID uint
	userID       uint
	ticketNumber string
	qrSecret     string
	status       vo.TicketStatus
	checkedInAt  *time.Time
	checkedInBy  *uint
	createdAt    time.Time
}

func NewTicket(orderID, eventID, ticketTypeID, userID uint, number, qrSecret string, now time.Time) (*Ticket, error) {
	if orderID == 0 || eventID == 0 || ticketTypeID == 0 || userID == 0 {
		return nil, fmt.Errorf("order, event, ticket type and user are required")
	}
	if number == "" || qrSecret == "" {
		return nil, fmt.Errorf("ticket number and QR secret are required")
	}
	return &Ticket{
		orderID:      orderID,
		eventID:      eventID,
		ticketTypeID: ticketTypeID,
		userID:       userID,
		ticketNumber: number,
		qrSecret:     qrSecret,
		status:       vo.TicketStatusValid,
		createdAt:    now.UTC(),
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence
func ReconstructTicket(
	id, orderID, eventID, ticketTypeID, userID uint,
	number, qrSecret string,
	status vo.TicketStatus,
	checkedInAt *time.Time,
	checkedInBy *uint,
	createdAt time.Time,
) *Ticket {
	return &Ticket{
		id:           id,
		orderID:      orderID,
		eventID:      eventID,
		ticketTypeID: ticketTypeID,
		userID:       userID,
		ticketNumber: number,
		qrSecret:     qrSecret,
		status:       status,
		checkedInAt:  checkedInAt,
		checkedInBy:  checkedInBy,
		createdAt:    createdAt,
	}
}

// CheckIn admits the holder at the door.
func (t *Ticket) CheckIn(staffID uint, now time.Time) error {
	switch t.status {
	case vo.TicketStatusCheckedIn:
		return ErrAlreadyCheckedIn
	case vo.TicketStatusVoided:
		return ErrTicketVoided
	}
	if !t.status.CanTransitionTo(vo.TicketStatusCheckedIn) {
		return ErrInvalidTransition
	}
	now = now.UTC()
	t.status = vo.TicketStatusCheckedIn
	t.checkedInAt = &now
	t.checkedInBy = &staffID
	return nil
}

// Void invalidates the ticket. Voided tickets are excluded from attendee lists.
func (t *Ticket) Void() error {
	if t.status.IsVoided() {
		return ErrTicketVoided
	}
	if !t.status.CanTransitionTo(vo.TicketStatusVoided) {
		return ErrInvalidTransition
	}
	t.status = vo.TicketStatusVoided
	return nil
}

func (t *Ticket) IsVoided() bool {
	return t.status.IsVoided()
}

func (t *Ticket) IsCheckedIn() bool {
	return t.status == vo.TicketStatusCheckedIn
}

func (t *Ticket) SetID(id uint) {
	t.id = id
}

func (t *Ticket) ID() uint { return t.id }
func (t *Ticket) OrderID() uint { return t.orderID }
func (t *Ticket) EventID() uint { return t.eventID }
func (t *Ticket) TicketTypeID() uint { return t.ticketTypeID }
func (t *Ticket) UserID() uint { return t.userID }
func (t *Ticket) TicketNumber() string { return t.ticketNumber }
func (t *Ticket) QRSecret() string { return t.qrSecret }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) CheckedInAt() *time.Time { return t.checkedInAt }
func (t *Ticket) CheckedInBy() *uint { return t.checkedInBy }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
