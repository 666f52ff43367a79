package util

import (
	"io"
	"sync"
)

var (
	closersMu sync.Mutex
	closers   []io.Closer
)

// RegisterCloser adds c to the set of resources closed by CloseAll. The
// console shell registers its open resource store here so an interrupt
// still flushes and releases it.
func RegisterCloser(c io.Closer) {
	closersMu.Lock()
	defer closersMu.Unlock()
	closers = append(closers, c)
	log.WithField("count", len(closers)).Debug("registered closer")
}

// CloseAll closes every registered resource in reverse registration order
// and clears the registry. A failing Close is logged and does not stop the
// remaining closers.
func CloseAll() {
	closersMu.Lock()
	defer closersMu.Unlock()

	log.WithField("count", len(closers)).Debug("closing registered resources")

	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			log.WithError(err).Warn("error closing resource")
		}
	}
	closers = nil
}
