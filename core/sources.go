package core

// Just returns a cold source that emits the given values in order and
// completes. Emission happens synchronously at subscribe time.
func Just[T any](values ...T) Observable[T] {
	return FromSlice(values)
}

// FromSlice returns a cold source that emits the slice's elements in
// order and completes. The slice is not copied; callers must not mutate
// it while subscriptions are active.
func FromSlice[T any](values []T) Observable[T] {
	return Create(func(observer Observer[T]) Subscription {
		for _, v := range values {
			observer.OnNext(v)
		}
		observer.OnCompleted()
		return NewSubscription(nil)
	})
}

// Empty returns a source that completes immediately without emitting.
func Empty[T any]() Observable[T] {
	return Create(func(observer Observer[T]) Subscription {
		observer.OnCompleted()
		return NewSubscription(nil)
	})
}

// Never returns a source that neither emits nor terminates.
func Never[T any]() Observable[T] {
	return Create(func(observer Observer[T]) Subscription {
		return NewSubscription(nil)
	})
}

// Throw returns a source that fails immediately with err.
func Throw[T any](err error) Observable[T] {
	return Create(func(observer Observer[T]) Subscription {
		observer.OnError(err)
		return NewSubscription(nil)
	})
}
