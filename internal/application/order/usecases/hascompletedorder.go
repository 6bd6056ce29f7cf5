package usecases

import (
	"context"
	"fmt"

	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/shared/logger"
)

type HasCompletedOrderQuery struct {
	EventID uint
	// UserID is zero for anonymous callers.
	UserID uint
}

type HasCompletedOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewHasCompletedOrderUseCase(orderRepo order.Repository, logger logger.Interface) *HasCompletedOrderUseCase {
	return &HasCompletedOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *HasCompletedOrderUseCase) Execute(ctx context.Context, query HasCompletedOrderQuery) (bool, error) {
	if query.UserID == 0 || query.EventID == 0 {
		return false, nil
	}
	registered, err := uc.orderRepo.HasCompletedForEvent(ctx, query.UserID, query.EventID)
	if err != nil {
		uc.logger.Errorw("failed to check registration",
			"error", err,
			"user_id", query.UserID,
			"event_id", query.EventID,
		)
		return false, fmt.Errorf("failed to check registration: %w", err)
	}
	return registered, nil
}
