package parmap

import (
	"sync"
	"sync/atomic"
)

// Flag is a single-shot cooperative cancellation signal with store-release /
// load-acquire semantics. Set closes the Done channel so channel-based
// consumers observe cancellation without polling; Clear re-arms the flag
// with a fresh channel.
type Flag struct {
	mu   sync.Mutex
	set  atomic.Bool
	done chan struct{}
}

// NewFlag returns an unset flag.
func NewFlag() *Flag {
	return &Flag{done: make(chan struct{})}
}

// Set raises the flag and closes the current Done channel. Idempotent.
func (f *Flag) Set() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.set.CompareAndSwap(false, true) {
		close(f.done)
	}
}

// IsSet reports whether the flag is raised.
func (f *Flag) IsSet() bool { return f.set.Load() }

// Clear lowers the flag and re-arms Done with a fresh channel. Idempotent.
func (f *Flag) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.set.CompareAndSwap(true, false) {
		f.done = make(chan struct{})
	}
}

// Done returns the channel closed by Set. After Clear, callers must fetch a
// fresh channel; a retained pre-Clear channel stays closed.
func (f *Flag) Done() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.done
}
