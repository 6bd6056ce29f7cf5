package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eventora/eventora/internal/shared/logger"
)

type mockReleaseExpired struct {
	calls   atomic.Int32
	execute func(ctx context.Context) (int, error)
}

func (m *mockReleaseExpired) Execute(ctx context.Context) (int, error) {
	m.calls.Add(1)
	if m.execute != nil {
		return m.execute(ctx)
	}
	return 0, nil
}

func TestOrderScheduler_SweepsOnStartAndEveryTick(t *testing.T) {
	job := &mockReleaseExpired{}
	s := NewOrderScheduler(job, 10*time.Millisecond, logger.NewNop())

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return job.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	s.Stop()
	after := job.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, job.calls.Load(), "no sweeps after Stop")

	assert.NotPanics(t, s.Stop)
}

func TestOrderScheduler_KeepsRunningAfterFailedSweep(t *testing.T) {
	job := &mockReleaseExpired{
		execute: func(context.Context) (int, error) { return 0, errors.New("db down") },
	}
	s := NewOrderScheduler(job, 10*time.Millisecond, logger.NewNop())

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return job.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestOrderScheduler_StopsOnContextCancel(t *testing.T) {
	job := &mockReleaseExpired{}
	s := NewOrderScheduler(job, 10*time.Millisecond, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	assert.Eventually(t, func() bool { return job.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not exit after context cancel")
	}
}

func TestNewOrderScheduler_DefaultsInterval(t *testing.T) {
	s := NewOrderScheduler(&mockReleaseExpired{}, 0, logger.NewNop())
	assert.Equal(t, time.Minute, s.interval)
}
