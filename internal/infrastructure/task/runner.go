package task

import (
	"context"
	"sync"
	"time"

	"porosemi/pkg/logger"
)

// Runner executes detached background tasks while keeping a handle on
// every one of them, so shutdown can drain in-flight work instead of
// dropping it. Request handlers launch pipeline runs here and return
// without waiting.
type Runner struct {
	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewRunner() *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		baseCtx: ctx,
		cancel:  cancel,
	}
}

// Go schedules fn on its own goroutine. The context passed to fn is
// detached from any request and only ends when the runner shuts down.
// Returns false once the runner is draining.
func (r *Runner) Go(name string, fn func(ctx context.Context)) bool {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		logger.Warn("Task %s rejected: runner is draining", name)
		return false
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Task %s panicked: %v", name, rec)
			}
		}()
		fn(r.baseCtx)
	}()

	return true
}

// Drain stops accepting tasks and waits for running ones up to the
// given timeout. Tasks still running afterwards are cancelled through
// their context.
func (r *Runner) Drain(timeout time.Duration) {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		logger.Warn("Runner drain timed out after %s, cancelling remaining tasks", timeout)
	}
	r.cancel()
}
