package usecases

import (
	"context"
	"time"

	"github.com/eventora/eventora/internal/application/order/dto"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/goroutine"
	"github.com/eventora/eventora/internal/shared/logger"
)

const confirmationTimeout = 30 * time.Second

// sendConfirmation emails the buyer in the background after the order commits.
func sendConfirmation(
	sender ConfirmationSender,
	log logger.Interface,
	buyer *user.User,
	ev *event.Event,
	o *order.Order,
	tickets []*ticket.Ticket,
) {
	if sender == nil {
		return
	}

	numbers := make([]string, 0, len(tickets))
	for _, t := range tickets {
		numbers = append(numbers, t.TicketNumber())
	}
	msg := dto.ConfirmationMessage{
		To:            buyer.Email(),
		RecipientName: buyer.DisplayName(),
		OrderID:       o.ID(),
		EventTitle:    ev.Title(),
		EventStart:    ev.StartDate(),
		Timezone:      ev.Timezone(),
		Total:         o.Total().String(),
		TicketNumbers: numbers,
	}

	goroutine.SafeGo(log, "order-confirmation", func() {
		ctx, cancel := context.WithTimeout(context.Background(), confirmationTimeout)
		defer cancel()
		if err := sender.SendOrderConfirmation(ctx, msg); err != nil {
			log.Warnw("failed to send order confirmation",
				"error", err,
				"order_id", msg.OrderID,
			)
		}
	})
}
