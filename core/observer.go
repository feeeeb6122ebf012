package core

// funcObserver adapts plain callbacks to the Observer interface.
type funcObserver[T any] struct {
	next      func(T)
	err       func(error)
	completed func()
}

// NewObserver builds an Observer from three callbacks. Any of them may be
// nil; the corresponding notification is then ignored.
func NewObserver[T any](onNext func(T), onError func(error), onCompleted func()) Observer[T] {
	return &funcObserver[T]{
		next:      onNext,
		err:       onError,
		completed: onCompleted,
	}
}

func (o *funcObserver[T]) OnNext(value T) {
	if o.next != nil {
		o.next(value)
	}
}

func (o *funcObserver[T]) OnError(err error) {
	if o.err != nil {
		o.err(err)
	}
}

func (o *funcObserver[T]) OnCompleted() {
	if o.completed != nil {
		o.completed()
	}
}
