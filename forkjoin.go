// Package streams provides synchronization combinators over push-based
// observable sources: a fork-join barrier that aggregates the final value
// of N sources, and a temporal left-join that pairs two sources under a
// timestamp guard. The underlying observable contract and the
// single-stream operators live in the core package.
package streams

import (
	"sync"

	"github.com/creastat/streams/core"
)

// ForkJoin subscribes to every source at once and waits for each to
// deliver its final value. It emits a single slice holding those values
// ordered by source position, then completes. The order in which sources
// complete never affects the output ordering.
//
// Failure on any source propagates immediately and tears down the other
// subscriptions; no value is emitted afterwards. A source that completes
// without ever emitting leaves the join waiting forever: the output never
// emits and never completes. Callers needing liveness must impose their
// own timeout. An empty source list completes immediately without a
// value.
func ForkJoin[T any](sources []core.Observable[T]) core.Observable[[]T] {
	return core.Create(func(downstream core.Observer[[]T]) core.Subscription {
		n := len(sources)
		if n == 0 {
			downstream.OnCompleted()
			return core.NewSubscription(nil)
		}

		join := &forkJoinState[T]{
			results:  make([]T, n),
			captured: make([]bool, n),
		}
		subs := core.NewCompositeSubscription()

		for i, source := range sources {
			index := i
			var latest T
			seen := false
			subs.Add(source.Subscribe(core.NewObserver(
				func(v T) {
					latest = v
					seen = true
				},
				downstream.OnError,
				func() {
					if !seen {
						// The final value never materialized, so the
						// barrier can never fire. See the hang note above.
						return
					}
					if results, ready := join.capture(index, latest); ready {
						downstream.OnNext(results)
						downstream.OnCompleted()
					}
				},
			)))
		}

		return subs
	})
}

// forkJoinState accumulates indexed final values until every source has
// reported one. Sources complete on their own goroutines, so captures are
// serialized here.
type forkJoinState[T any] struct {
	mu       sync.Mutex
	results  []T
	captured []bool
	count    int
}

// capture records the final value of the source at index. The returned
// slice is valid exactly once, when the last outstanding source reports.
func (s *forkJoinState[T]) capture(index int, value T) ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.captured[index] {
		return nil, false
	}
	s.captured[index] = true
	s.results[index] = value
	s.count++

	if s.count != len(s.results) {
		return nil, false
	}
	return s.results, true
}
