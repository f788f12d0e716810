package observable

import (
	"weak"

	"github.com/tailored-agentic-units/observable/event"
)

// Proxy is a read-only mirror of a Source. It caches the source's value and
// re-fires the source's events through registries of its own.
//
// The proxy keeps its source reachable, while the source only refers to the
// proxy weakly: an unreachable proxy stops firing and its subscriptions on
// the source are swept on the source's next notification.
type Proxy[T any] struct {
	value  T
	src    Source[T]
	before *event.Reference[Change[T]]
	after  *event.Reference[Change[T]]
}

// NewProxy creates a Proxy of src.
func NewProxy[T any](src Source[T], opts ...Option) *Proxy[T] {
	s := newSettings("proxy", opts)
	p := &Proxy[T]{value: src.Value(), src: src}
	p.before, p.after = newRegistries[T](s)

	wp := weak.Make(p)
	owner := event.Weak(p)
	src.BeforeChange().AddOwned(owner, func(c Change[T]) {
		if proxy := wp.Value(); proxy != nil {
			proxy.before.Notify(c)
		}
	})
	src.AfterChange().AddOwned(owner, func(c Change[T]) {
		if proxy := wp.Value(); proxy != nil {
			proxy.value = c.New
			proxy.after.Notify(c)
		}
	})
	return p
}

// Value returns the mirrored value as of the source's last AfterChange.
func (p *Proxy[T]) Value() T {
	return p.value
}

func (p *Proxy[T]) BeforeChange() event.Registry[Change[T]] {
	return p.before
}

func (p *Proxy[T]) AfterChange() event.Registry[Change[T]] {
	return p.after
}
