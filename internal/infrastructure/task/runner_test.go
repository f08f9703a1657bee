package task

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoRunsTask(t *testing.T) {
	r := NewRunner()
	done := make(chan struct{})

	accepted := r.Go("test", func(ctx context.Context) {
		close(done)
	})
	assert.True(t, accepted)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
}

func TestDrainWaitsForTasks(t *testing.T) {
	r := NewRunner()
	var finished atomic.Bool

	r.Go("slow", func(ctx context.Context) {
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})

	r.Drain(time.Second)
	assert.True(t, finished.Load())
}

func TestGoRejectedAfterDrain(t *testing.T) {
	r := NewRunner()
	r.Drain(0)

	accepted := r.Go("late", func(ctx context.Context) {})
	assert.False(t, accepted)
}

func TestDrainTimeoutCancelsContext(t *testing.T) {
	r := NewRunner()
	cancelled := make(chan struct{})

	r.Go("stuck", func(ctx context.Context) {
		<-ctx.Done()
		close(cancelled)
	})

	r.Drain(10 * time.Millisecond)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("task context was never cancelled")
	}
}

func TestPanicDoesNotKillRunner(t *testing.T) {
	r := NewRunner()

	r.Go("panicky", func(ctx context.Context) {
		panic("boom")
	})

	done := make(chan struct{})
	r.Go("after", func(ctx context.Context) {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner stopped accepting work after a panic")
	}
	r.Drain(time.Second)
}
