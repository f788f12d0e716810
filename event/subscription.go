package event

import "github.com/google/uuid"

// Retainer is implemented by owned objects that track how many live
// subscriptions hold them. Retain is called when the object is added to a
// subscription and Release when it leaves it, whether by removal or by
// invalidation.
type Retainer interface {
	Retain()
	Release()
}

// Subscription binds a handler to a validity condition. Subscriptions are
// compared by pointer: two subscriptions built from the same handler and
// owner are distinct and independently removable.
//
// There is no way for a registry to learn that an owner died, so a
// subscription is checked only when a registry notifies it. Invalidation
// drops the handler and every owned object at once instead of waiting for
// the registry to forget the subscription.
type Subscription[T any] struct {
	id      uuid.UUID
	alive   func() bool
	handler func(T)
	owned   []any
}

func alwaysValid() bool { return true }
func neverValid() bool  { return false }
func noop[T any](T)     {}

// NewSubscription creates a subscription for handler. With a nil owner the
// subscription stays valid until invalidated or removed; otherwise its
// validity follows owner.Alive.
func NewSubscription[T any](owner Owner, handler func(T)) *Subscription[T] {
	s := &Subscription[T]{
		id:      uuid.Must(uuid.NewV7()),
		alive:   alwaysValid,
		handler: handler,
	}
	if owner != nil {
		s.alive = owner.Alive
	}
	if s.handler == nil {
		s.handler = noop[T]
	}
	return s
}

// ID identifies the subscription in diagnostics.
func (s *Subscription[T]) ID() uuid.UUID {
	return s.id
}

// Valid reports whether the subscription should still be notified. A dead
// owner invalidates the subscription as a side effect.
func (s *Subscription[T]) Valid() bool {
	if !s.alive() {
		s.Invalidate()
		return false
	}
	return true
}

// Invalidate makes the subscription permanently invalid, replaces its
// handler with a no-op and releases its owned objects. Calling it again has
// no further effect.
func (s *Subscription[T]) Invalidate() {
	s.alive = neverValid
	s.handler = noop[T]
	owned := s.owned
	s.owned = nil
	for _, o := range owned {
		release(o)
	}
}

// Handle invokes the current handler with payload.
func (s *Subscription[T]) Handle(payload T) {
	s.handler(payload)
}

// AddOwnedObject keeps o reachable for as long as the subscription is
// valid. o must be comparable; pointers are the usual choice.
func (s *Subscription[T]) AddOwnedObject(o any) {
	s.owned = append(s.owned, o)
	if r, ok := o.(Retainer); ok {
		r.Retain()
	}
}

// RemoveOwnedObject drops every occurrence of o from the owned objects.
func (s *Subscription[T]) RemoveOwnedObject(o any) {
	kept := s.owned[:0:0]
	var dropped []any
	for _, existing := range s.owned {
		if existing == o {
			dropped = append(dropped, existing)
			continue
		}
		kept = append(kept, existing)
	}
	if len(dropped) == 0 {
		return
	}
	s.owned = kept
	for _, d := range dropped {
		release(d)
	}
}

// Owns reports whether o is among the owned objects.
func (s *Subscription[T]) Owns(o any) bool {
	for _, existing := range s.owned {
		if existing == o {
			return true
		}
	}
	return false
}

func release(o any) {
	if r, ok := o.(Retainer); ok {
		r.Release()
	}
}
