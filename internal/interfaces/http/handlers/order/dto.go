package order

import (
	"github.com/eventora/eventora/internal/application/order/usecases"
)

type CreateFreeOrderRequest struct {
	EventID      uint `json:"event_id" binding:"required"`
	TicketTypeID uint `json:"ticket_type_id" binding:"required"`
	Quantity     int  `json:"quantity" binding:"required,gt=0"`
}

type OrderItemRequest struct {
	TicketTypeID uint `json:"ticket_type_id" binding:"required"`
	Quantity     int  `json:"quantity" binding:"required,gt=0"`
}

type CreatePaidOrderRequest struct {
	EventID uint               `json:"event_id" binding:"required"`
	Items   []OrderItemRequest `json:"items" binding:"required,min=1,max=20,dive"`
}

// CompletePaymentRequest may echo the cart; when present it must match the
// items reserved in phase one.
type CompletePaymentRequest struct {
	PaymentReference string             `json:"payment_reference" binding:"required,max=255"`
	Items            []OrderItemRequest `json:"items" binding:"omitempty,max=20,dive"`
}

func toItemInputs(items []OrderItemRequest) []usecases.ItemInput {
	if len(items) == 0 {
		return nil
	}
	inputs := make([]usecases.ItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, usecases.ItemInput{
			TicketTypeID: item.TicketTypeID,
			Quantity:     item.Quantity,
		})
	}
	return inputs
}
