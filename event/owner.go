package event

import (
	"context"
	"weak"
)

// Owner reports whether the object a subscription is tied to still exists.
type Owner interface {
	Alive() bool
}

// OwnerFunc adapts a predicate to Owner.
type OwnerFunc func() bool

func (f OwnerFunc) Alive() bool { return f() }

type weakOwner[T any] struct {
	p weak.Pointer[T]
}

func (w weakOwner[T]) Alive() bool { return w.p.Value() != nil }

// Weak returns an Owner that stays alive until *p is reclaimed by the
// garbage collector. Holding the Owner does not keep *p reachable.
func Weak[T any](p *T) Owner {
	return weakOwner[T]{p: weak.Make(p)}
}

type contextOwner struct {
	ctx context.Context
}

func (c contextOwner) Alive() bool { return c.ctx.Err() == nil }

// Context returns an Owner that dies when ctx is done.
func Context(ctx context.Context) Owner {
	return contextOwner{ctx: ctx}
}

// Lifetime is an Owner whose end is signalled explicitly.
type Lifetime struct {
	ended bool
}

// NewLifetime returns a live Lifetime.
func NewLifetime() *Lifetime {
	return &Lifetime{}
}

func (l *Lifetime) Alive() bool { return !l.ended }

// End marks the lifetime over. Subscriptions owned by l are swept on the
// next notification of their registry.
func (l *Lifetime) End() { l.ended = true }
