package core

import "time"

// Clock supplies the current instant. Production code passes time.Now;
// tests substitute a manual clock for deterministic timestamps.
type Clock func() time.Time

// Timestamped tags a value with the instant it was observed.
type Timestamped[T any] struct {
	Value T
	At    time.Time
}

// Timestamp tags every value from the source with the clock's current
// instant at the moment of emission. A nil clock uses time.Now.
func Timestamp[T any](source Observable[T], clock Clock) Observable[Timestamped[T]] {
	if clock == nil {
		clock = time.Now
	}
	return Create(func(downstream Observer[Timestamped[T]]) Subscription {
		return source.Subscribe(NewObserver(
			func(v T) {
				downstream.OnNext(Timestamped[T]{Value: v, At: clock()})
			},
			downstream.OnError,
			downstream.OnCompleted,
		))
	})
}
