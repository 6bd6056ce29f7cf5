package email

import (
	"context"

	"github.com/eventora/eventora/internal/application/order/dto"
	"github.com/eventora/eventora/internal/shared/logger"
)

// NopEmailService logs instead of sending. Used when email is disabled.
type NopEmailService struct {
	logger logger.Interface
}

func NewNopEmailService(log logger.Interface) *NopEmailService {
	return &NopEmailService{logger: log}
}

func (s *NopEmailService) SendOrderConfirmation(_ context.Context, msg dto.ConfirmationMessage) error {
	s.logger.Debugw("email disabled, skipping order confirmation",
		"order_id", msg.OrderID,
		"tickets", len(msg.TicketNumbers),
	)
	return nil
}
