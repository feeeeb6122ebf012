// Package streamtest provides observation helpers for tests: a recording
// observer and a manually driven clock.
package streamtest

import (
	"sync"
	"time"
)

// Recorder captures every notification for later assertions. It
// implements core.Observer and is safe under concurrent use.
type Recorder[T any] struct {
	mu        sync.Mutex
	values    []T
	err       error
	completed bool
	terminal  chan struct{}
}

// NewRecorder constructs an empty Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{terminal: make(chan struct{})}
}

// OnNext appends the value to the recording. Values arriving after a
// terminal notification are ignored.
func (r *Recorder[T]) OnNext(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.terminated() {
		return
	}
	r.values = append(r.values, value)
}

// OnCompleted records a completion.
func (r *Recorder[T]) OnCompleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.terminated() {
		return
	}
	r.completed = true
	close(r.terminal)
}

// OnError records a failure.
func (r *Recorder[T]) OnError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.terminated() {
		return
	}
	r.err = err
	close(r.terminal)
}

// Values returns a snapshot copy of the recorded values.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]T, len(r.values))
	copy(cp, r.values)
	return cp
}

// Err returns the recorded failure, if any.
func (r *Recorder[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Completed reports whether a completion was recorded.
func (r *Recorder[T]) Completed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

// AwaitTerminal blocks until a terminal notification arrives or the
// timeout expires, reporting whether one arrived.
func (r *Recorder[T]) AwaitTerminal(timeout time.Duration) bool {
	select {
	case <-r.terminal:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (r *Recorder[T]) terminated() bool {
	return r.completed || r.err != nil
}
