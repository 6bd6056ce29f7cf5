package dto

import (
	"time"

	ticketdto "github.com/eventora/eventora/internal/application/ticket/dto"
	"github.com/eventora/eventora/internal/domain/order"
)

type FreeOrderResultDTO struct {
	OrderID        uint `json:"order_id"`
	TicketsCreated int  `json:"tickets_created"`
}

type PaidOrderResultDTO struct {
	OrderID      uint      `json:"order_id"`
	TotalAmount  int64     `json:"total_amount"`
	Currency     string    `json:"currency"`
	TotalDisplay string    `json:"total_display"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type PaymentResultDTO struct {
	OrderID        uint `json:"order_id"`
	TicketsCreated int  `json:"tickets_created"`
}

type OrderItemDTO struct {
	TicketTypeID uint  `json:"ticket_type_id"`
	Quantity     int   `json:"quantity"`
	UnitPrice    int64 `json:"unit_price"`
}

type OrderDTO struct {
	ID               uint           `json:"id"`
	EventID          uint           `json:"event_id"`
	Status           string         `json:"status"`
	TotalAmount      int64          `json:"total_amount"`
	Currency         string         `json:"currency"`
	TotalDisplay     string         `json:"total_display"`
	PaymentProvider  string         `json:"payment_provider"`
	PaymentReference string         `json:"payment_reference,omitempty"`
	ExpiresAt        *time.Time     `json:"expires_at,omitempty"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	Items            []OrderItemDTO `json:"items"`
}

// OrderConfirmationDTO is the caller's latest completed order for an event.
type OrderConfirmationDTO struct {
	Order   OrderDTO                   `json:"order"`
	Event   *ticketdto.EventSummaryDTO `json:"event"`
	Tickets []ticketdto.TicketDTO      `json:"tickets"`
}

// ConfirmationMessage is what the buyer is told once an order completes.
type ConfirmationMessage struct {
	To            string
	RecipientName string
	OrderID       uint
	EventTitle    string
	EventStart    time.Time
	Timezone      string
	Total         string
	TicketNumbers []string
}

func ToOrderDTO(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			TicketTypeID: item.TicketTypeID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}
	return OrderDTO{
		ID:               o.ID(),
		EventID:          o.EventID(),
		Status:           o.Status().String(),
		TotalAmount:      o.Total().AmountInCents(),
		Currency:         o.Total().Currency(),
		TotalDisplay:     o.Total().String(),
		PaymentProvider:  string(o.PaymentProvider()),
		PaymentReference: o.PaymentReference(),
		ExpiresAt:        o.ExpiresAt(),
		CompletedAt:      o.CompletedAt(),
		CreatedAt:        o.CreatedAt(),
		Items:            items,
	}
}
