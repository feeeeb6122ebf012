package core

// Filter passes through only the values satisfying pred.
func Filter[T any](source Observable[T], pred func(T) bool) Observable[T] {
	return Create(func(downstream Observer[T]) Subscription {
		return source.Subscribe(NewObserver(
			func(v T) {
				if pred(v) {
					downstream.OnNext(v)
				}
			},
			downstream.OnError,
			downstream.OnCompleted,
		))
	})
}

// Map transforms every value through fn.
func Map[T, U any](source Observable[T], fn func(T) U) Observable[U] {
	return Create(func(downstream Observer[U]) Subscription {
		return source.Subscribe(NewObserver(
			func(v T) {
				downstream.OnNext(fn(v))
			},
			downstream.OnError,
			downstream.OnCompleted,
		))
	})
}

// Aggregate folds the source left-to-right starting from seed and emits
// the final accumulated value when the source completes. An empty source
// emits the seed.
func Aggregate[T, A any](source Observable[T], seed A, fn func(A, T) A) Observable[A] {
	return Create(func(downstream Observer[A]) Subscription {
		acc := seed
		return source.Subscribe(NewObserver(
			func(v T) {
				acc = fn(acc, v)
			},
			downstream.OnError,
			func() {
				downstream.OnNext(acc)
				downstream.OnCompleted()
			},
		))
	})
}

// Last replays only the final value the source emitted before completing.
// A source that completes without emitting completes Last without a value.
func Last[T any](source Observable[T]) Observable[T] {
	return Create(func(downstream Observer[T]) Subscription {
		var latest T
		seen := false
		return source.Subscribe(NewObserver(
			func(v T) {
				latest = v
				seen = true
			},
			downstream.OnError,
			func() {
				if seen {
					downstream.OnNext(latest)
				}
				downstream.OnCompleted()
			},
		))
	})
}
