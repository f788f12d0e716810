package observable

import (
	"weak"

	"github.com/tailored-agentic-units/observable/event"
)

// Reference gives an Observable a stable identity. Value and Set go straight
// to the referenced Observable; events are re-fired through registries that
// belong to the Reference, so they survive Unshare on the Observable only
// as far as its subscriptions do.
type Reference[T any] struct {
	target *Observable[T]
	before *event.Reference[Change[T]]
	after  *event.Reference[Change[T]]
}

// NewReference creates a Reference to a fresh Observable holding v.
func NewReference[T any](v T, opts ...Option) *Reference[T] {
	o := New(v, opts...)
	return ReferenceTo(&o, opts...)
}

// ReferenceTo creates a Reference to o.
func ReferenceTo[T any](o *Observable[T], opts ...Option) *Reference[T] {
	s := newSettings("reference", opts)
	r := &Reference[T]{target: o}
	r.before, r.after = newRegistries[T](s)

	wr := weak.Make(r)
	owner := event.Weak(r)
	o.BeforeChange().AddOwned(owner, func(c Change[T]) {
		if ref := wr.Value(); ref != nil {
			ref.before.Notify(c)
		}
	})
	o.AfterChange().AddOwned(owner, func(c Change[T]) {
		if ref := wr.Value(); ref != nil {
			ref.after.Notify(c)
		}
	})
	return r
}

func (r *Reference[T]) Value() T {
	return r.target.Value()
}

// Set assigns v to the referenced Observable.
func (r *Reference[T]) Set(v T) {
	r.target.Set(v)
}

func (r *Reference[T]) BeforeChange() event.Registry[Change[T]] {
	return r.before
}

func (r *Reference[T]) AfterChange() event.Registry[Change[T]] {
	return r.after
}
