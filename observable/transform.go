package observable

import (
	"weak"

	"github.com/tailored-agentic-units/observable/event"
)

// Transform mirrors a Source through a mapping function: its value is
// fn(source value) and each change of the source is re-fired with both
// sides mapped. Like Proxy it is referenced weakly by its source.
type Transform[S, T any] struct {
	value  T
	fn     func(S) T
	src    Source[S]
	before *event.Reference[Change[T]]
	after  *event.Reference[Change[T]]
}

// Map creates a Transform of src through fn.
func Map[S, T any](src Source[S], fn func(S) T, opts ...Option) *Transform[S, T] {
	s := newSettings("transform", opts)
	t := &Transform[S, T]{value: fn(src.Value()), fn: fn, src: src}
	t.before, t.after = newRegistries[T](s)

	wt := weak.Make(t)
	owner := event.Weak(t)
	src.BeforeChange().AddOwned(owner, func(c Change[S]) {
		if tr := wt.Value(); tr != nil {
			tr.before.Notify(tr.mapChange(c))
		}
	})
	src.AfterChange().AddOwned(owner, func(c Change[S]) {
		if tr := wt.Value(); tr != nil {
			mapped := tr.mapChange(c)
			tr.value = mapped.New
			tr.after.Notify(mapped)
		}
	})
	return t
}

func (t *Transform[S, T]) mapChange(c Change[S]) Change[T] {
	return Change[T]{Old: t.fn(c.Old), New: t.fn(c.New)}
}

func (t *Transform[S, T]) Value() T {
	return t.value
}

func (t *Transform[S, T]) BeforeChange() event.Registry[Change[T]] {
	return t.before
}

func (t *Transform[S, T]) AfterChange() event.Registry[Change[T]] {
	return t.after
}
