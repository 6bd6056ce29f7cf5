package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/shared/id"
)

// issueTickets creates one ticket per purchased unit across the order's items.
func issueTickets(
	ctx context.Context,
	tickets ticket.Repository,
	codes ticket.CodeGenerator,
	o *order.Order,
	now time.Time,
) ([]*ticket.Ticket, error) {
	prefix := id.PrefixPaidTicket
	if o.Total().IsZero() {
		prefix = id.PrefixFreeTicket
	}

	issued := make([]*ticket.Ticket, 0, o.TicketCount())
	for _, item := range o.Items() {
		for i := 0; i < item.Quantity; i++ {
			number, err := codes.TicketNumber(prefix)
			if err != nil {
				return nil, fmt.Errorf("failed to generate ticket number: %w", err)
			}
			secret, err := codes.QRSecret()
			if err != nil {
				return nil, fmt.Errorf("failed to generate QR secret: %w", err)
			}
			t, err := ticket.NewTicket(o.ID(), o.EventID(), item.TicketTypeID, o.UserID(), number, secret, now)
			if err != nil {
				return nil, err
			}
			issued = append(issued, t)
		}
	}

	if err := tickets.CreateBatch(ctx, issued); err != nil {
		return nil, err
	}
	return issued, nil
}
