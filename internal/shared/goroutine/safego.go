// Package goroutine starts background work that must not crash the process.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/litrevu/litrevu/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine and logs a panic with its stack instead of crashing.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverTask(log, name)
		fn()
	}()
}

// Every runs fn once per interval until ctx is done. A panic in one run is
// logged and the next tick still fires.
func Every(ctx context.Context, log logger.Interface, name string, interval time.Duration, fn func(ctx context.Context)) {
	SafeGo(log, name, func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce(ctx, log, name, fn)
			}
		}
	})
}

func runOnce(ctx context.Context, log logger.Interface, name string, fn func(ctx context.Context)) {
	defer recoverTask(log, name)
	fn(ctx)
}

func recoverTask(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("background task panicked",
			"task", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
