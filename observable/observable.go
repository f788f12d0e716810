package observable

import (
	"github.com/tailored-agentic-units/observable/event"
	"github.com/tailored-agentic-units/observable/observability"
)

// Diagnostics event types emitted by this package.
const (
	EventUnshare       observability.EventType = "observable.unshare"
	EventChainRetarget observability.EventType = "chain.retarget"
)

// Option configures diagnostics for an observable and its registries.
type Option func(*settings)

type settings struct {
	observer observability.Observer
	name     string
}

// WithObserver reports diagnostics of the observable and its registries to o.
func WithObserver(o observability.Observer) Option {
	return func(s *settings) { s.observer = o }
}

// WithName names the observable in diagnostics events.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

func newSettings(kind string, opts []Option) settings {
	s := settings{name: kind}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) emit(typ observability.EventType, data map[string]any) {
	observability.Emit(s.observer, observability.LevelInfo, typ, s.name, data)
}

func (s settings) registryOptions(phase string) []event.Option {
	return []event.Option{
		event.WithObserver(s.observer),
		event.WithSource(s.name + "." + phase),
	}
}

func newRegistries[T any](s settings) (before, after *event.Reference[Change[T]]) {
	return event.NewReference[Change[T]](s.registryOptions("before")...),
		event.NewReference[Change[T]](s.registryOptions("after")...)
}

// Observable is a value with before and after change events. The zero value
// holds the zero T and is ready for use, but it creates its registries on
// first use: copies of a zero value taken before any Set or subscription
// never share. Use New when copies are expected.
//
// Copies of an initialized Observable share their registries: a subscriber
// added through either copy hears the mutations of both until Unshare
// separates them.
type Observable[T any] struct {
	value    T
	before   *event.Reference[Change[T]]
	after    *event.Reference[Change[T]]
	settings settings
}

// New returns an Observable holding v.
func New[T any](v T, opts ...Option) Observable[T] {
	s := newSettings("observable", opts)
	before, after := newRegistries[T](s)
	return Observable[T]{
		value:    v,
		before:   before,
		after:    after,
		settings: s,
	}
}

func (o *Observable[T]) init() {
	if o.before != nil {
		return
	}
	if o.settings.name == "" {
		o.settings.name = "observable"
	}
	o.before, o.after = newRegistries[T](o.settings)
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	return o.value
}

// Set stores v. BeforeChange fires first with the old value still stored,
// then v is stored and AfterChange fires. Each phase reads the stored value
// at the moment it fires, so handlers that mutate the observable re-entrantly
// are reflected in the payload of the phases that follow.
func (o *Observable[T]) Set(v T) {
	o.init()
	o.before.Notify(Change[T]{Old: o.value, New: v})
	old := o.value
	o.value = v
	o.after.Notify(Change[T]{Old: old, New: v})
}

// Update sets the result of fn applied to the current value.
func (o *Observable[T]) Update(fn func(T) T) {
	o.Set(fn(o.value))
}

func (o *Observable[T]) BeforeChange() event.Registry[Change[T]] {
	o.init()
	return o.before
}

func (o *Observable[T]) AfterChange() event.Registry[Change[T]] {
	o.init()
	return o.after
}

// Unshare detaches this copy's registries from every other copy. With
// removeSubscriptions the copy starts over with empty registries; otherwise
// it keeps the current subscribers in registries of its own, and later Add
// or Remove calls on either side no longer affect the other.
func (o *Observable[T]) Unshare(removeSubscriptions bool) {
	o.init()
	if removeSubscriptions {
		o.before, o.after = newRegistries[T](o.settings)
	} else {
		o.before, o.after = o.before.Clone(), o.after.Clone()
	}
	o.settings.emit(EventUnshare, map[string]any{"remove_subscriptions": removeSubscriptions})
}
