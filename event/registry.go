package event

import "github.com/tailored-agentic-units/observable/observability"

// Registry is the behaviour shared by Event, Reference and OwningReference.
type Registry[T any] interface {
	// Notify sweeps invalid subscriptions, then calls every remaining
	// handler with payload in insertion order.
	Notify(payload T)

	// Add appends s and returns it. The same subscription may be added
	// more than once.
	Add(s *Subscription[T]) *Subscription[T]

	// AddFunc creates, adds and returns an unowned subscription.
	AddFunc(handler func(T)) *Subscription[T]

	// AddOwned creates, adds and returns a subscription whose validity
	// follows owner.
	AddOwned(owner Owner, handler func(T)) *Subscription[T]

	// Remove drops the first occurrence of s. Absent subscriptions are
	// ignored.
	Remove(s *Subscription[T])

	// RemoveAll drops every subscription without invalidating them.
	RemoveAll()

	// Len returns the number of stored subscriptions, including ones that
	// have not been swept yet.
	Len() int
}

// Diagnostics event types emitted by registries.
const (
	EventSweep     observability.EventType = "event.sweep"
	EventRemoveAll observability.EventType = "event.remove_all"
	EventRetain    observability.EventType = "event.retain"
	EventRelease   observability.EventType = "event.release"
)

// Option configures diagnostics of a registry.
type Option func(*settings)

type settings struct {
	observer observability.Observer
	source   string
}

// WithObserver reports registry diagnostics to o.
func WithObserver(o observability.Observer) Option {
	return func(s *settings) { s.observer = o }
}

// WithSource names the registry in diagnostics events.
func WithSource(name string) Option {
	return func(s *settings) { s.source = name }
}

func (s settings) emit(typ observability.EventType, data map[string]any) {
	if s.observer == nil {
		return
	}
	source := s.source
	if source == "" {
		source = "event"
	}
	observability.Emit(s.observer, observability.LevelVerbose, typ, source, data)
}
