//go:build windows
// +build windows

package signals

import (
	"os"
	"os/signal"
)

func init() {
	signal.Notify(sigChan, os.Interrupt)
}

// Handle dispatches incoming signals until StopHandle closes the channel.
// Windows has no SIGHUP, so only the interrupt path exists; reloads are
// driven from the console instead.
func Handle() {
	for sig := range sigChan {
		if sig == os.Interrupt {
			handleInterrupted()
		}
	}
}
