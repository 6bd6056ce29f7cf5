package usecases

import (
	"context"

	"github.com/eventora/eventora/internal/application/order/dto"
)

type CreateFreeOrderExecutor interface {
	Execute(ctx context.Context, cmd CreateFreeOrderCommand) (*dto.FreeOrderResultDTO, error)
}

type CreatePaidOrderExecutor interface {
	Execute(ctx context.Context, cmd CreatePaidOrderCommand) (*dto.PaidOrderResultDTO, error)
}

type CompleteOrderPaymentExecutor interface {
	Execute(ctx context.Context, cmd CompleteOrderPaymentCommand) (*dto.PaymentResultDTO, error)
}

type HasCompletedOrderExecutor interface {
	Execute(ctx context.Context, query HasCompletedOrderQuery) (bool, error)
}

type GetOrderConfirmationExecutor interface {
	Execute(ctx context.Context, query GetOrderConfirmationQuery) (*dto.OrderConfirmationDTO, error)
}

type ReleaseExpiredOrdersExecutor interface {
	Execute(ctx context.Context) (int, error)
}
