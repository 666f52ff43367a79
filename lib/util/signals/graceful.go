package signals

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// defaultGracefulTimeout is the maximum time to wait for pre-shutdown handlers
// to complete before proceeding with interrupt handlers.
const defaultGracefulTimeout = 30 * time.Second

var (
	preShutdown     handlerRegistry
	timeoutMu       sync.RWMutex
	gracefulTimeout = defaultGracefulTimeout
)

// RegisterPreShutdownHandler registers a handler that runs BEFORE the
// interrupt handlers during graceful shutdown. This is where last-chance
// persistence belongs: the console registers a final dump of the resource
// store here so that an in-memory state that diverged from the backing file
// after a failed write gets one more chance to land on disk.
//
// Pre-shutdown handlers run in registration order (FIFO) and each handler is
// protected against panics. All pre-shutdown handlers must complete (or the
// graceful timeout must expire) before interrupt handlers are invoked.
//
// Nil handlers are silently ignored.
func RegisterPreShutdownHandler(f Handler) {
	preShutdown.register(f)
}

// SetGracefulTimeout configures the maximum time to wait for pre-shutdown
// handlers to complete. If zero or negative, defaults to 30 seconds.
func SetGracefulTimeout(timeout time.Duration) {
	timeoutMu.Lock()
	defer timeoutMu.Unlock()
	if timeout <= 0 {
		gracefulTimeout = defaultGracefulTimeout
	} else {
		gracefulTimeout = timeout
	}
}

// handlePreShutdown runs all registered pre-shutdown handlers with a timeout.
// Returns true if all handlers completed within the timeout, false otherwise.
func handlePreShutdown() bool {
	snapshot := preShutdown.snapshot()
	if len(snapshot) == 0 {
		return true
	}

	timeoutMu.RLock()
	timeout := gracefulTimeout
	timeoutMu.RUnlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, h := range snapshot {
			runContained(h.fn, "pre-shutdown")
		}
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		fmt.Fprintf(os.Stderr, "signals: pre-shutdown handlers timed out after %s\n", timeout)
		return false
	}
}
