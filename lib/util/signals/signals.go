package signals

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
)

// sigChan is buffered to avoid missing signals delivered while no receiver is ready.
var sigChan = make(chan os.Signal, 1)

// Handler is a function called when a signal is received.
type Handler func()

// HandlerID identifies a registered handler within its registry, used to
// deregister individual handlers.
type HandlerID int

// registeredHandler pairs a handler with its ID.
type registeredHandler struct {
	id HandlerID
	fn Handler
}

// handlerRegistry is an ordered set of handlers with deregistration by ID.
// Each registry locks itself, so dispatching one signal role never blocks
// registration for another.
type handlerRegistry struct {
	mu       sync.RWMutex
	handlers []registeredHandler
	nextID   HandlerID
}

func (r *handlerRegistry) register(f Handler) HandlerID {
	if f == nil {
		return -1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.handlers = append(r.handlers, registeredHandler{id: id, fn: f})
	return id
}

func (r *handlerRegistry) deregister(id HandlerID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, h := range r.handlers {
		if h.id == id {
			r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
			return
		}
	}
}

func (r *handlerRegistry) snapshot() []registeredHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]registeredHandler, len(r.handlers))
	copy(out, r.handlers)
	return out
}

// dispatch runs every handler in registration order, outside the registry
// lock so handlers may register or deregister themselves.
func (r *handlerRegistry) dispatch(role string) {
	for _, h := range r.snapshot() {
		runContained(h.fn, role)
	}
}

// runContained invokes f, containing a panic so one broken handler cannot
// take down signal handling for the rest. The package has no logger; stderr
// keeps panicking handlers visible in logs and consoles.
func runContained(f Handler, role string) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(os.Stderr, "signals: panic in %s handler: %v\n", role, rec)
		}
	}()
	f()
}

var (
	reloaders    handlerRegistry
	interrupters handlerRegistry
	stopOnce     sync.Once
)

// RegisterReloadHandler registers a handler called on SIGHUP. The interactive
// console uses this to re-read the resource file from disk, picking up edits
// made by other processes. Returns a HandlerID that can be passed to
// DeregisterReloadHandler. Nil handlers are silently ignored and return -1.
func RegisterReloadHandler(f Handler) HandlerID {
	return reloaders.register(f)
}

// DeregisterReloadHandler removes a previously registered reload handler by ID.
func DeregisterReloadHandler(id HandlerID) {
	reloaders.deregister(id)
}

func handleReload() {
	reloaders.dispatch("reload")
}

// RegisterInterruptHandler registers a handler called on SIGINT/SIGTERM
// (shutdown). Returns a HandlerID that can be passed to
// DeregisterInterruptHandler. Nil handlers are silently ignored and return -1.
func RegisterInterruptHandler(f Handler) HandlerID {
	return interrupters.register(f)
}

// DeregisterInterruptHandler removes a previously registered interrupt handler by ID.
func DeregisterInterruptHandler(id HandlerID) {
	interrupters.deregister(id)
}

func handleInterrupted() {
	if !handlePreShutdown() {
		fmt.Fprintln(os.Stderr, "signals: proceeding with shutdown despite incomplete pre-shutdown handlers")
	}
	interrupters.dispatch("interrupt")
}

// StopHandle closes the signal channel, causing Handle() to return.
// It first calls signal.Stop to prevent signal delivery to the closed channel.
// Safe to call multiple times; only the first call takes effect.
func StopHandle() {
	stopOnce.Do(func() {
		signal.Stop(sigChan)
		close(sigChan)
	})
}
