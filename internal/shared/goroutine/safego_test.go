package goroutine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/litrevu/litrevu/internal/shared/logger"
)

func TestSafeGoRecoversPanic(t *testing.T) {
	done := make(chan struct{})
	SafeGo(logger.NewNop(), "panics", func() {
		defer close(done)
		panic("boom")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
}

func TestEveryKeepsRunningAfterPanic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	Every(ctx, logger.NewNop(), "ticker", 5*time.Millisecond, func(context.Context) {
		if runs.Add(1) == 1 {
			panic("first run fails")
		}
	})

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestEveryStopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var runs atomic.Int32
	Every(ctx, logger.NewNop(), "ticker", 5*time.Millisecond, func(context.Context) {
		runs.Add(1)
	})
	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}
