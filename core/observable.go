package core

// Observer receives notifications pushed by an Observable.
//
// Notifications for a single subscription are delivered sequentially:
// a source must not call back into the same observer concurrently.
// After OnCompleted or OnError no further notifications arrive.
type Observer[T any] interface {
	OnNext(value T)
	OnCompleted()
	OnError(err error)
}

// Subscription is the live relationship between an observer and a source.
// Dispose releases the resources backing it and stops all further
// notifications; it is safe to call more than once.
type Subscription interface {
	Dispose()
}

// Observable is a push-based source of values. Each Subscribe starts an
// independent consumption: cold sources restart from the beginning for
// every new observer.
type Observable[T any] interface {
	Subscribe(observer Observer[T]) Subscription
}
