//go:build !windows
// +build !windows

package signals

import (
	"os/signal"
	"syscall"
)

func init() {
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
}

// Handle dispatches incoming signals until StopHandle closes the channel.
// SIGHUP runs the reload handlers; SIGINT and SIGTERM run the shutdown
// sequence.
func Handle() {
	for sig := range sigChan {
		switch sig {
		case syscall.SIGHUP:
			handleReload()
		case syscall.SIGINT, syscall.SIGTERM:
			handleInterrupted()
		}
	}
}
