package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/shared/biztime"
	"github.com/eventora/eventora/internal/shared/db"
	"github.com/eventora/eventora/internal/shared/logger"
)

const (
	defaultReleaseBatchSize = 100
	// maxReleaseAttempts is how many sweeps may fail on one order before it
	// is parked and left out of later batches.
	maxReleaseAttempts = 3
)

// ReleaseExpiredOrdersUseCase cancels pending paid orders whose hold window
// has closed and returns their reserved capacity.
type ReleaseExpiredOrdersUseCase struct {
	orderRepo      order.Repository
	ticketTypeRepo event.TicketTypeRepository
	txMgr          *db.TransactionManager
	recorder       LedgerRecorder
	logger         logger.Interface
	batchSize      int
	now            biztime.Clock

	mu       sync.Mutex
	failures map[uint]int
}

func NewReleaseExpiredOrdersUseCase(
	orderRepo order.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	txMgr *db.TransactionManager,
	recorder LedgerRecorder,
	logger logger.Interface,
	batchSize int,
) *ReleaseExpiredOrdersUseCase {
	if batchSize <= 0 {
		batchSize = defaultReleaseBatchSize
	}
	return &ReleaseExpiredOrdersUseCase{
		orderRepo:      orderRepo,
		ticketTypeRepo: ticketTypeRepo,
		txMgr:          txMgr,
		recorder:       recorder,
		logger:         logger,
		batchSize:      batchSize,
		now:            biztime.NowUTC,
		failures:       make(map[uint]int),
	}
}

// Execute processes one batch and returns the number of orders released.
func (uc *ReleaseExpiredOrdersUseCase) Execute(ctx context.Context) (int, error) {
	now := uc.now()
	expired, err := uc.orderRepo.ListExpiredPending(ctx, now, uc.batchSize, uc.parked()...)
	if err != nil {
		uc.logger.Errorw("failed to list expired orders", "error", err)
		return 0, fmt.Errorf("failed to list expired orders: %w", err)
	}
	if len(expired) == 0 {
		uc.logger.Debugw("no expired orders found")
		return 0, nil
	}

	uc.logger.Infow("releasing expired orders", "count", len(expired))

	released := 0
	for _, o := range expired {
		units, err := uc.release(ctx, o)
		if err != nil {
			if errors.Is(err, order.ErrOrderNotPending) {
				// Completed or released concurrently.
				uc.logger.Debugw("expired order no longer pending", "order_id", o.ID())
				continue
			}
			uc.logger.Errorw("failed to release expired order",
				"error", err,
				"order_id", o.ID(),
			)
			if uc.recordFailure(o.ID()) {
				uc.logger.Errorw("expired order parked after repeated release failures",
					"order_id", o.ID(),
					"attempts", maxReleaseAttempts,
				)
			}
			continue
		}

		uc.clearFailure(o.ID())
		released++
		uc.recorder.ReservationsReleased(units)
		uc.logger.Infow("expired order released",
			"order_id", o.ID(),
			"event_id", o.EventID(),
			"units", units,
		)
	}

	uc.logger.Infow("expired orders processed",
		"total", len(expired),
		"released", released,
	)
	return released, nil
}

func (uc *ReleaseExpiredOrdersUseCase) release(ctx context.Context, o *order.Order) (int, error) {
	units := 0
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := o.Cancel(uc.now()); err != nil {
			return err
		}
		if err := uc.orderRepo.MarkCancelled(txCtx, o); err != nil {
			return err
		}
		for _, item := range o.Items() {
			if err := uc.ticketTypeRepo.Release(txCtx, item.TicketTypeID, item.Quantity); err != nil {
				return err
			}
			units += item.Quantity
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return units, nil
}

// parked returns the orders that exhausted their release attempts.
func (uc *ReleaseExpiredOrdersUseCase) parked() []uint {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	var ids []uint
	for id, n := range uc.failures {
		if n >= maxReleaseAttempts {
			ids = append(ids, id)
		}
	}
	return ids
}

// recordFailure counts a failed release and reports whether the order just
// became parked.
func (uc *ReleaseExpiredOrdersUseCase) recordFailure(orderID uint) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.failures[orderID]++
	return uc.failures[orderID] == maxReleaseAttempts
}

func (uc *ReleaseExpiredOrdersUseCase) clearFailure(orderID uint) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.failures, orderID)
}
