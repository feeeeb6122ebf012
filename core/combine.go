package core

import "sync"

// combineState caches the most recent value seen on each side of a
// pairwise combination, together with completion bookkeeping.
type combineState[A, B any] struct {
	mu         sync.Mutex
	first      A
	second     B
	hasFirst   bool
	hasSecond  bool
	doneFirst  bool
	doneSecond bool
}

// CombineLatest pairs the most recent values of two sources, emitting a
// combined value whenever either side produces one. Nothing is emitted
// until both sides have emitted at least once. The output completes once
// both sources have completed and fails as soon as either fails.
func CombineLatest[A, B, O any](first Observable[A], second Observable[B], combine func(A, B) O) Observable[O] {
	return Create(func(downstream Observer[O]) Subscription {
		state := &combineState[A, B]{}
		subs := NewCompositeSubscription()

		subs.Add(first.Subscribe(NewObserver(
			func(v A) {
				state.mu.Lock()
				state.first = v
				state.hasFirst = true
				ready := state.hasSecond
				other := state.second
				state.mu.Unlock()
				if ready {
					downstream.OnNext(combine(v, other))
				}
			},
			downstream.OnError,
			func() {
				state.mu.Lock()
				state.doneFirst = true
				finished := state.doneSecond
				state.mu.Unlock()
				if finished {
					downstream.OnCompleted()
				}
			},
		)))

		subs.Add(second.Subscribe(NewObserver(
			func(v B) {
				state.mu.Lock()
				state.second = v
				state.hasSecond = true
				ready := state.hasFirst
				other := state.first
				state.mu.Unlock()
				if ready {
					downstream.OnNext(combine(other, v))
				}
			},
			downstream.OnError,
			func() {
				state.mu.Lock()
				state.doneSecond = true
				finished := state.doneFirst
				state.mu.Unlock()
				if finished {
					downstream.OnCompleted()
				}
			},
		)))

		return subs
	})
}
