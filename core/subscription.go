package core

import "sync"

// funcSubscription runs a dispose callback exactly once.
type funcSubscription struct {
	once    sync.Once
	dispose func()
}

// NewSubscription wraps a dispose callback in a Subscription. A nil
// callback yields a no-op subscription.
func NewSubscription(dispose func()) Subscription {
	return &funcSubscription{dispose: dispose}
}

func (s *funcSubscription) Dispose() {
	s.once.Do(func() {
		if s.dispose != nil {
			s.dispose()
		}
	})
}

// CompositeSubscription groups child subscriptions so that disposing the
// group disposes every child. Children added after disposal are disposed
// immediately.
type CompositeSubscription struct {
	mu       sync.Mutex
	children []Subscription
	disposed bool
}

// NewCompositeSubscription creates a group holding the given children.
func NewCompositeSubscription(children ...Subscription) *CompositeSubscription {
	return &CompositeSubscription{children: children}
}

// Add attaches a child to the group.
func (c *CompositeSubscription) Add(child Subscription) {
	if child == nil {
		return
	}
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		child.Dispose()
		return
	}
	c.children = append(c.children, child)
	c.mu.Unlock()
}

// Dispose disposes every child. Safe to call more than once.
func (c *CompositeSubscription) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	children := c.children
	c.children = nil
	c.mu.Unlock()

	for _, child := range children {
		child.Dispose()
	}
}
