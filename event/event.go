package event

import "slices"

// Event is a value-semantics registry. The zero value is an empty registry
// ready for use.
//
// The subscriber slice is never written in place: every Add, Remove and
// sweep installs a fresh slice. A copy of an Event therefore starts with the
// same subscriptions as its original and diverges from the first mutation on
// either side, and Notify can iterate its own snapshot while handlers mutate
// the registry.
type Event[T any] struct {
	subscriptions []*Subscription[T]
	settings      settings
}

// NewEvent creates an empty Event with the given diagnostics options.
func NewEvent[T any](opts ...Option) Event[T] {
	var e Event[T]
	for _, opt := range opts {
		opt(&e.settings)
	}
	return e
}

func (e *Event[T]) Notify(payload T) {
	live := e.sweep()
	for _, s := range live {
		s.Handle(payload)
	}
}

// sweep replaces the subscriber list with its valid members and returns the
// new list, which callers may treat as an immutable snapshot.
func (e *Event[T]) sweep() []*Subscription[T] {
	live := make([]*Subscription[T], 0, len(e.subscriptions))
	var swept []string
	for _, s := range e.subscriptions {
		if s.Valid() {
			live = append(live, s)
			continue
		}
		swept = append(swept, s.ID().String())
	}
	e.subscriptions = live
	if len(swept) > 0 {
		e.settings.emit(EventSweep, map[string]any{
			"swept":     len(swept),
			"remaining": len(live),
			"ids":       swept,
		})
	}
	return live
}

func (e *Event[T]) Add(s *Subscription[T]) *Subscription[T] {
	e.subscriptions = append(slices.Clip(e.subscriptions), s)
	return s
}

func (e *Event[T]) AddFunc(handler func(T)) *Subscription[T] {
	return e.Add(NewSubscription[T](nil, handler))
}

func (e *Event[T]) AddOwned(owner Owner, handler func(T)) *Subscription[T] {
	return e.Add(NewSubscription(owner, handler))
}

func (e *Event[T]) Remove(s *Subscription[T]) {
	i := slices.Index(e.subscriptions, s)
	if i < 0 {
		return
	}
	e.subscriptions = slices.Delete(slices.Clone(e.subscriptions), i, i+1)
}

func (e *Event[T]) RemoveAll() {
	n := len(e.subscriptions)
	e.subscriptions = nil
	if n > 0 {
		e.settings.emit(EventRemoveAll, map[string]any{"removed": n})
	}
}

func (e *Event[T]) Len() int {
	return len(e.subscriptions)
}

// Subscriptions returns a copy of the stored subscriptions in notification
// order.
func (e *Event[T]) Subscriptions() []*Subscription[T] {
	return slices.Clone(e.subscriptions)
}
