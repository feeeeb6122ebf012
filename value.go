package streams

import "sync"

// Value is a parameter accepted either as a literal or as a deferred
// computation. The deferred variant is resolved at most once, at the
// point of first use, and the result is cached for every later use.
type Value[T any] struct {
	literal  T
	supplier func() T
	once     sync.Once
	resolved T
}

// Of wraps a literal value.
func Of[T any](v T) *Value[T] {
	return &Value[T]{literal: v}
}

// DeferValue wraps a zero-argument computation producing the value.
func DeferValue[T any](supplier func() T) *Value[T] {
	return &Value[T]{supplier: supplier}
}

// Get resolves the value. Deferred suppliers run exactly once.
func (v *Value[T]) Get() T {
	if v.supplier == nil {
		return v.literal
	}
	v.once.Do(func() {
		v.resolved = v.supplier()
	})
	return v.resolved
}
