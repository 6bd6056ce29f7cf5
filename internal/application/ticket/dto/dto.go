package dto

import (
	"time"

	"github.com/eventora/eventora/internal/domain/event"
	vo "github.com/eventora/eventora/internal/domain/order/valueobjects"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/domain/user"
)

type TicketTypeSummaryDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Currency     string `json:"currency"`
	PriceDisplay string `json:"price_display"`
}

type TicketDTO struct {
	ID           uint                  `json:"id"`
	OrderID      uint                  `json:"order_id"`
	EventID      uint                  `json:"event_id"`
	TicketNumber string                `json:"ticket_number"`
	QRSecret     string                `json:"qr_secret"`
	Status       string                `json:"status"`
	CheckedInAt  *time.Time            `json:"checked_in_at,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	TicketType   *TicketTypeSummaryDTO `json:"ticket_type,omitempty"`
}

type EventSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	LocationName  string    `json:"location_name"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Timezone      string    `json:"timezone"`
}

// EventTicketsDTO is one event and the caller's tickets for it.
type EventTicketsDTO struct {
	Event   *EventSummaryDTO `json:"event"`
	Tickets []TicketDTO      `json:"tickets"`
}

type AttendeeUserDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url,omitempty"`
}

// AttendeeDTO aggregates the non-voided tickets one user holds for an event.
type AttendeeDTO struct {
	User             AttendeeUserDTO `json:"user"`
	Tickets          []TicketDTO     `json:"tickets"`
	TicketCount      int             `json:"ticket_count"`
	TotalPaid        int64           `json:"total_paid"`
	Currency         string          `json:"currency"`
	TotalPaidDisplay string          `json:"total_paid_display"`
}

type CheckInResultDTO struct {
	Ticket      TicketDTO `json:"ticket"`
	AttendeeID  uint      `json:"attendee_id"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

func ToTicketTypeSummaryDTO(tt *event.TicketType) *TicketTypeSummaryDTO {
	if tt == nil {
		return nil
	}
	return &TicketTypeSummaryDTO{
		ID:           tt.ID(),
		Name:         tt.Name(),
		Price:        tt.Price(),
		Currency:     tt.Currency(),
		PriceDisplay: vo.NewMoney(tt.Price(), tt.Currency()).String(),
	}
}

func ToTicketDTO(t *ticket.Ticket, tt *event.TicketType) TicketDTO {
	return TicketDTO{
		ID:           t.ID(),
		OrderID:      t.OrderID(),
		EventID:      t.EventID(),
		TicketNumber: t.TicketNumber(),
		QRSecret:     t.QRSecret(),
		Status:       t.Status().String(),
		CheckedInAt:  t.CheckedInAt(),
		CreatedAt:    t.CreatedAt(),
		TicketType:   ToTicketTypeSummaryDTO(tt),
	}
}

func ToEventSummaryDTO(e *event.Event) *EventSummaryDTO {
	if e == nil {
		return nil
	}
	return &EventSummaryDTO{
		ID:            e.ID(),
		Title:         e.Title(),
		Slug:          e.Slug(),
		LocationName:  e.LocationName(),
		CoverImageURL: e.CoverImageURL(),
		StartDate:     e.StartDate(),
		EndDate:       e.EndDate(),
		Timezone:      e.Timezone(),
	}
}

func ToAttendeeUserDTO(u *user.User) AttendeeUserDTO {
	return AttendeeUserDTO{
		ID:       u.ID(),
		Name:     u.DisplayName(),
		Email:    u.Email(),
		ImageURL: u.ImageURL(),
	}
}
