package core

import "sync"

// Subject is both an Observable and an Observer: values pushed into it
// are multicast to every current subscriber. After a terminal
// notification the Subject is sealed and later subscribers receive that
// terminal immediately.
//
// Pushes from multiple goroutines must be externally serialized, matching
// the sequential-delivery contract of Observer.
type Subject[T any] struct {
	mu        sync.Mutex
	observers map[int]Observer[T]
	nextID    int
	done      bool
	err       error
}

// NewSubject creates an open Subject with no subscribers.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{observers: make(map[int]Observer[T])}
}

// Subscribe registers an observer for future notifications.
func (s *Subject[T]) Subscribe(observer Observer[T]) Subscription {
	s.mu.Lock()
	if s.done {
		err := s.err
		s.mu.Unlock()
		if err != nil {
			observer.OnError(err)
		} else {
			observer.OnCompleted()
		}
		return NewSubscription(nil)
	}
	id := s.nextID
	s.nextID++
	s.observers[id] = observer
	s.mu.Unlock()

	return NewSubscription(func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	})
}

// OnNext multicasts a value to all current subscribers. Ignored after a
// terminal notification.
func (s *Subject[T]) OnNext(value T) {
	for _, observer := range s.snapshot() {
		observer.OnNext(value)
	}
}

// OnCompleted seals the Subject and completes all current subscribers.
func (s *Subject[T]) OnCompleted() {
	for _, observer := range s.seal(nil) {
		observer.OnCompleted()
	}
}

// OnError seals the Subject and fails all current subscribers.
func (s *Subject[T]) OnError(err error) {
	for _, observer := range s.seal(err) {
		observer.OnError(err)
	}
}

// HasObservers reports whether any subscription is currently active.
func (s *Subject[T]) HasObservers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers) > 0
}

func (s *Subject[T]) snapshot() []Observer[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	observers := make([]Observer[T], 0, len(s.observers))
	for _, observer := range s.observers {
		observers = append(observers, observer)
	}
	return observers
}

// seal marks the Subject terminated and detaches all observers, returning
// them so the terminal notification can be delivered outside the lock.
func (s *Subject[T]) seal(err error) []Observer[T] {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return nil
	}
	s.done = true
	s.err = err
	observers := make([]Observer[T], 0, len(s.observers))
	for _, observer := range s.observers {
		observers = append(observers, observer)
	}
	s.observers = nil
	s.mu.Unlock()
	return observers
}
