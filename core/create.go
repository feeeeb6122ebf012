package core

import "sync"

// Create builds an Observable from a subscribe function.
//
// The observer handed to subscribe is gated: it delivers at most one
// terminal notification, drops everything after a terminal or after the
// returned subscription is disposed, and disposes the subscription the
// subscribe function returned as soon as the stream terminates. Sources
// built through Create therefore satisfy the subscription contract
// without tracking it themselves.
func Create[T any](subscribe func(observer Observer[T]) Subscription) Observable[T] {
	return createObservable[T]{subscribe: subscribe}
}

type createObservable[T any] struct {
	subscribe func(observer Observer[T]) Subscription
}

func (o createObservable[T]) Subscribe(observer Observer[T]) Subscription {
	g := &gate[T]{downstream: observer}
	g.attach(o.subscribe(g))
	return g
}

// gate enforces the terminal contract between one source and one observer.
type gate[T any] struct {
	mu         sync.Mutex
	downstream Observer[T]
	upstream   Subscription
	done       bool
}

func (g *gate[T]) OnNext(value T) {
	g.mu.Lock()
	if g.done {
		g.mu.Unlock()
		return
	}
	downstream := g.downstream
	g.mu.Unlock()

	downstream.OnNext(value)
}

func (g *gate[T]) OnCompleted() {
	if downstream := g.terminate(); downstream != nil {
		downstream.OnCompleted()
	}
}

func (g *gate[T]) OnError(err error) {
	if downstream := g.terminate(); downstream != nil {
		downstream.OnError(err)
	}
}

// Dispose closes the gate and releases the upstream subscription without
// notifying the downstream observer.
func (g *gate[T]) Dispose() {
	g.terminate()
}

// terminate flips the gate closed and disposes the upstream subscription.
// It returns the downstream observer to notify, exactly once; later calls
// return nil.
func (g *gate[T]) terminate() Observer[T] {
	g.mu.Lock()
	if g.done {
		g.mu.Unlock()
		return nil
	}
	g.done = true
	upstream := g.upstream
	g.upstream = nil
	downstream := g.downstream
	g.mu.Unlock()

	if upstream != nil {
		upstream.Dispose()
	}
	return downstream
}

// attach binds the upstream subscription. When the stream already
// terminated during subscribe (synchronous sources), the subscription is
// disposed on the spot.
func (g *gate[T]) attach(upstream Subscription) {
	g.mu.Lock()
	if g.done {
		g.mu.Unlock()
		if upstream != nil {
			upstream.Dispose()
		}
		return
	}
	g.upstream = upstream
	g.mu.Unlock()
}
