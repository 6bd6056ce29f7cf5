package scheduler

import (
	"context"
	"sync"
	"time"

	orderUsecases "github.com/eventora/eventora/internal/application/order/usecases"
	"github.com/eventora/eventora/internal/shared/logger"
)

const sweepTimeout = 2 * time.Minute

// OrderScheduler periodically cancels paid orders whose payment hold has
// passed and returns their reserved capacity.
type OrderScheduler struct {
	releaseExpiredUC orderUsecases.ReleaseExpiredOrdersExecutor
	logger           logger.Interface
	interval         time.Duration
	stopChan         chan struct{}
	stopOnce         sync.Once
	wg               sync.WaitGroup
}

func NewOrderScheduler(
	releaseExpiredUC orderUsecases.ReleaseExpiredOrdersExecutor,
	interval time.Duration,
	logger logger.Interface,
) *OrderScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &OrderScheduler{
		releaseExpiredUC: releaseExpiredUC,
		logger:           logger,
		interval:         interval,
		stopChan:         make(chan struct{}),
	}
}

// Start launches the sweep loop and returns immediately.
func (s *OrderScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting order scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop halts the loop and waits for an in-flight sweep. Safe to call twice.
func (s *OrderScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping order scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("order scheduler stopped")
	})
}

func (s *OrderScheduler) run(ctx context.Context) {
	// holds left over from before a restart are released right away
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("order scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *OrderScheduler) sweep(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, sweepTimeout)
	defer cancel()

	start := time.Now()
	released, err := s.releaseExpiredUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("failed to release expired orders",
			"error", err,
			"duration", time.Since(start),
		)
		return
	}
	if released > 0 {
		s.logger.Infow("expired orders released",
			"count", released,
			"duration", time.Since(start),
		)
	}
}
