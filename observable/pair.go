package observable

import (
	"weak"

	"github.com/tailored-agentic-units/observable/event"
)

// Tuple is the value of a PairObservable.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// PairObservable combines two sources into one whose value is the pair of
// their values. A change on either side fires the pair's events with the
// other side held constant.
//
// The pair keeps both sources reachable, so derived sources such as proxies
// live as long as the pair does.
type PairObservable[A, B any] struct {
	first  A
	second B
	a      Source[A]
	b      Source[B]
	before *event.Reference[Change[Tuple[A, B]]]
	after  *event.Reference[Change[Tuple[A, B]]]
}

// Pair creates a PairObservable of a and b.
func Pair[A, B any](a Source[A], b Source[B], opts ...Option) *PairObservable[A, B] {
	s := newSettings("pair", opts)
	p := &PairObservable[A, B]{
		first:  a.Value(),
		second: b.Value(),
		a:      a,
		b:      b,
	}
	p.before, p.after = newRegistries[Tuple[A, B]](s)

	wp := weak.Make(p)
	owner := event.Weak(p)
	a.BeforeChange().AddOwned(owner, func(c Change[A]) {
		if pair := wp.Value(); pair != nil {
			pair.before.Notify(pair.firstChanged(c))
		}
	})
	a.AfterChange().AddOwned(owner, func(c Change[A]) {
		if pair := wp.Value(); pair != nil {
			pair.first = c.New
			pair.after.Notify(pair.firstChanged(c))
		}
	})
	b.BeforeChange().AddOwned(owner, func(c Change[B]) {
		if pair := wp.Value(); pair != nil {
			pair.before.Notify(pair.secondChanged(c))
		}
	})
	b.AfterChange().AddOwned(owner, func(c Change[B]) {
		if pair := wp.Value(); pair != nil {
			pair.second = c.New
			pair.after.Notify(pair.secondChanged(c))
		}
	})
	return p
}

func (p *PairObservable[A, B]) firstChanged(c Change[A]) Change[Tuple[A, B]] {
	return Change[Tuple[A, B]]{
		Old: Tuple[A, B]{First: c.Old, Second: p.second},
		New: Tuple[A, B]{First: c.New, Second: p.second},
	}
}

func (p *PairObservable[A, B]) secondChanged(c Change[B]) Change[Tuple[A, B]] {
	return Change[Tuple[A, B]]{
		Old: Tuple[A, B]{First: p.first, Second: c.Old},
		New: Tuple[A, B]{First: p.first, Second: c.New},
	}
}

func (p *PairObservable[A, B]) Value() Tuple[A, B] {
	return Tuple[A, B]{First: p.first, Second: p.second}
}

func (p *PairObservable[A, B]) BeforeChange() event.Registry[Change[Tuple[A, B]]] {
	return p.before
}

func (p *PairObservable[A, B]) AfterChange() event.Registry[Change[Tuple[A, B]]] {
	return p.after
}
