package inputhook

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
)

var (
	// ErrAlreadyRunning is returned by Start when the runner already owns a live hook.
	ErrAlreadyRunning = errors.New("inputhook: hook already running")
	// ErrNotRunning is returned by Stop when no hook is installed.
	ErrNotRunning = errors.New("inputhook: hook not running")
	// ErrInstallFailed wraps the OS error when the hook cannot be installed.
	ErrInstallFailed = errors.New("inputhook: hook installation failed")
	// ErrUnsupported indicates global mouse hooks are not available on this platform.
	ErrUnsupported = errors.New("inputhook is only supported on Windows")
)

// Options configures a Runner.
type Options struct {
	// IgnoreInjected lets events synthesized by SendInput pass through untouched.
	IgnoreInjected bool
}

// Runner owns one global low-level mouse hook together with the capture flag
// and handler slot its callback reads.
type Runner struct {
	capturing      atomic.Bool
	ignoreInjected atomic.Bool
	handler        atomic.Pointer[Handler]

	mu       sync.Mutex
	done     chan struct{}
	threadID uint32

	// hook is owned by the goroutine running the message loop.
	hook uintptr

	callbackOnce sync.Once
	callbackPtr  uintptr
}

type startResult struct {
	threadID uint32
	err      error
}

// New returns an idle runner.
func New(opts Options) *Runner {
	r := &Runner{}
	r.ignoreInjected.Store(opts.IgnoreInjected)
	return r
}

var defaultRunner = New(Options{})

// Default returns the process-wide runner used by the exported C entry points.
func Default() *Runner {
	return defaultRunner
}

// SetCapturing switches between capture (swallow) and passive (monitor) mode.
func (r *Runner) SetCapturing(capturing bool) {
	r.capturing.Store(capturing)
	if debugEnabled() {
		log.Printf("hook: capturing=%v", capturing)
	}
}

// Capturing reports the current capture mode.
func (r *Runner) Capturing() bool {
	return r.capturing.Load()
}

// SetIgnoreInjected toggles pass-through of synthesized events.
func (r *Runner) SetIgnoreInjected(ignore bool) {
	r.ignoreInjected.Store(ignore)
}

// SetHandler publishes the event handler. A nil handler clears the slot.
// An invocation already in flight may still reach the previous handler once.
func (r *Runner) SetHandler(h Handler) {
	if h == nil {
		r.handler.Store(nil)
		return
	}
	r.handler.Store(&h)
}

// Running reports whether the runner owns a live hook.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeLocked()
}

// Start installs the hook on a dedicated OS thread and returns once the
// installation outcome is known.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.activeLocked() {
		return ErrAlreadyRunning
	}

	ready := make(chan startResult, 1)
	done := make(chan struct{})
	go r.run(ready, done)

	res := <-ready
	if res.err != nil {
		<-done
		log.Printf("hook: start failed: %v", res.err)
		return res.err
	}
	r.done = done
	r.threadID = res.threadID
	log.Printf("hook: installed thread=%d", res.threadID)
	return nil
}

// Stop ends the message loop, which uninstalls the hook on its own thread,
// and waits for it to finish or for ctx to expire.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.activeLocked() {
		return ErrNotRunning
	}
	if err := postQuit(r.threadID); err != nil {
		return fmt.Errorf("inputhook: post quit to thread %d: %w", r.threadID, err)
	}
	select {
	case <-r.done:
		r.done = nil
		r.threadID = 0
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// activeLocked reports whether the message loop goroutine is still alive.
func (r *Runner) activeLocked() bool {
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}
