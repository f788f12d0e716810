package observable

import (
	"weak"

	"github.com/tailored-agentic-units/observable/event"
)

// ChainProxy follows a path from the value of a base source to a second
// source, the target, and exposes the target's value as an Optional. When
// the base changes the chain re-resolves the path and moves its
// subscriptions to the new target. A path that yields nil leaves the chain
// without a target and its value None.
//
// The chain keeps itself alive while anything is subscribed to it, so a
// chain built inline and subscribed to keeps working without the caller
// holding on to it. Once its last subscription is removed or invalidated
// it becomes collectable, and its subscriptions on the base and target are
// swept on their next notification.
type ChainProxy[B, V any] struct {
	base Source[B]
	path func(B) Source[V]

	target     Source[V]
	generation uint64

	beforeSub      *event.Subscription[Change[V]]
	afterSub       *event.Subscription[Change[V]]
	attachedBefore event.Registry[Change[V]]
	attachedAfter  event.Registry[Change[V]]

	before *event.OwningReference[Change[Optional[V]]]
	after  *event.OwningReference[Change[Optional[V]]]

	settings settings
}

// Chain creates a ChainProxy that follows path from base. It attaches to
// path(base.Value()) immediately.
func Chain[B, V any](base Source[B], path func(B) Source[V], opts ...Option) *ChainProxy[B, V] {
	c := &ChainProxy[B, V]{
		base:     base,
		path:     path,
		settings: newSettings("chain", opts),
	}

	wc := weak.Make(c)
	owner := event.Weak(c)
	base.BeforeChange().AddOwned(owner, func(ch Change[B]) {
		if chain := wc.Value(); chain != nil {
			chain.baseWillChange(ch)
		}
	})
	base.AfterChange().AddOwned(owner, func(ch Change[B]) {
		if chain := wc.Value(); chain != nil {
			chain.baseDidChange(ch)
		}
	})

	c.target = c.resolve(base.Value())
	c.attach(c.target)
	return c
}

// Then extends a chain by one hop. A None value of prev yields no target
// without calling path.
func Then[V, W any](prev Source[Optional[V]], path func(V) Source[W], opts ...Option) *ChainProxy[Optional[V], W] {
	return Chain(prev, func(o Optional[V]) Source[W] {
		v, ok := o.Get()
		if !ok {
			return nil
		}
		return path(v)
	}, opts...)
}

// Value returns the target's current value, or None without a target.
func (c *ChainProxy[B, V]) Value() Optional[V] {
	return derive(c.target)
}

// Target returns the source the chain is currently attached to.
func (c *ChainProxy[B, V]) Target() (Source[V], bool) {
	return c.target, c.target != nil
}

func (c *ChainProxy[B, V]) BeforeChange() event.Registry[Change[Optional[V]]] {
	if c.before == nil {
		c.before = event.NewOwningReference[Change[Optional[V]]](c, c.settings.registryOptions("before")...)
	}
	return c.before
}

func (c *ChainProxy[B, V]) AfterChange() event.Registry[Change[Optional[V]]] {
	if c.after == nil {
		c.after = event.NewOwningReference[Change[Optional[V]]](c, c.settings.registryOptions("after")...)
	}
	return c.after
}

func derive[V any](src Source[V]) Optional[V] {
	if src == nil {
		return None[V]()
	}
	return Some(src.Value())
}

func (c *ChainProxy[B, V]) resolve(b B) Source[V] {
	next := c.path(b)
	if isNil(next) {
		return nil
	}
	return next
}

func (c *ChainProxy[B, V]) baseWillChange(ch Change[B]) {
	if c.before == nil {
		return
	}
	c.before.Notify(Change[Optional[V]]{
		Old: derive(c.target),
		New: derive(c.resolve(ch.New)),
	})
}

func (c *ChainProxy[B, V]) baseDidChange(ch Change[B]) {
	next := c.resolve(ch.New)
	prev := c.target

	c.detach()
	c.target = next
	c.generation++
	generation := c.generation
	c.settings.emit(EventChainRetarget, map[string]any{
		"attached":   next != nil,
		"generation": generation,
	})

	if c.after != nil {
		c.after.Notify(Change[Optional[V]]{Old: derive(prev), New: derive(next)})
	}

	// A handler above may have changed the base again and already attached
	// to a newer target.
	if c.generation == generation {
		c.attach(next)
	}
}

func (c *ChainProxy[B, V]) attach(target Source[V]) {
	if target == nil {
		return
	}
	wc := weak.Make(c)
	owner := event.Weak(c)

	c.attachedBefore = target.BeforeChange()
	c.beforeSub = c.attachedBefore.AddOwned(owner, func(ch Change[V]) {
		if chain := wc.Value(); chain != nil && chain.before != nil {
			chain.before.Notify(Change[Optional[V]]{Old: Some(ch.Old), New: Some(ch.New)})
		}
	})
	c.attachedAfter = target.AfterChange()
	c.afterSub = c.attachedAfter.AddOwned(owner, func(ch Change[V]) {
		if chain := wc.Value(); chain != nil && chain.after != nil {
			chain.after.Notify(Change[Optional[V]]{Old: Some(ch.Old), New: Some(ch.New)})
		}
	})
}

func (c *ChainProxy[B, V]) detach() {
	if c.attachedBefore != nil {
		c.attachedBefore.Remove(c.beforeSub)
	}
	if c.attachedAfter != nil {
		c.attachedAfter.Remove(c.afterSub)
	}
	c.attachedBefore, c.attachedAfter = nil, nil
	c.beforeSub, c.afterSub = nil, nil
}
